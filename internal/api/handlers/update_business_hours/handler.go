package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/schedule/models"
)

const (
	msgInvalidDayOfWeek   = "день недели должен быть числом от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректные часы работы: время в формате HH:MM, открытие раньше закрытия"
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

// Handle PUT /api/v1/business-hours/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBusinessHours(r.Context(), dayOfWeek, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /business-hours/{day} - Day of week out of range: %d", dayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidBusinessHours):
			h.logger.Warn("PUT /business-hours/{day} - Invalid hours: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /business-hours/{day} - Failed to update business hours: day=%d, error=%v", dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours/{day} - Business hours updated: day=%d, open=%t", dayOfWeek, result.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, result)
}
