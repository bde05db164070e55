package get_scheduling_config

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
)

const msgInvalidID = "staffId и serviceId должны быть числами"

type Handler struct {
	service SchedulingService
	logger  Logger
}

func NewHandler(service SchedulingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/scheduling-config?staffId=&serviceId=
// Возвращает эффективную конфигурацию с учетом иерархии и значений по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := ToServiceRequest(query.Get("staffId"), query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /scheduling-config - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetWithHierarchy(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /scheduling-config - Failed to get config: staff_id=%s, service_id=%s, error=%v",
			query.Get("staffId"), query.Get("serviceId"), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /scheduling-config - Config retrieved: level=%s", result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
