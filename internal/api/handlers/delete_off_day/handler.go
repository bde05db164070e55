package delete_off_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
)

const (
	msgInvalidOffDayID = "некорректный ID выходного"
	msgNotFound        = "выходной не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/off-days/{offDayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	offDayID, err := strconv.ParseInt(vars["offDayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /off-days/{id} - Invalid off-day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOffDayID)
		return
	}

	if err := h.service.DeleteOffDay(r.Context(), offDayID); err != nil {
		if errors.Is(err, schedule.ErrOffDayNotFound) {
			h.logger.Warn("DELETE /off-days/{id} - Off-day not found: id=%d", offDayID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /off-days/{id} - Failed to delete off-day: id=%d, error=%v", offDayID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /off-days/{id} - Off-day deleted: id=%d", offDayID)
	handlers.RespondNoContent(w)
}
