package create_off_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные: дата в формате YYYY-MM-DD, причина не длиннее 255 символов"
	msgInPast             = "нельзя добавить выходной в прошлом"
	msgAlreadyExists      = "выходной на эту дату уже существует"
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

// Handle POST /api/v1/off-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOffDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /off-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateOffDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /off-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedule.ErrOffDayInPast):
			h.logger.Warn("POST /off-days - Date in the past: %s", req.Date)
			handlers.RespondBadRequest(w, msgInPast)

		case errors.Is(err, schedule.ErrOffDayAlreadyExists):
			h.logger.Warn("POST /off-days - Already exists: %s", req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /off-days - Failed to create off-day: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /off-days - Off-day created: id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
