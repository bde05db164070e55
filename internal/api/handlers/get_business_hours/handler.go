package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
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

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBusinessHours(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to get business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /business-hours - Business hours retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
