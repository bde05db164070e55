package update_scheduling_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные конфигурации"
)

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

// Handle PUT /api/v1/scheduling-config
// Создает или заменяет конфигурацию для области (staffId, serviceId)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /scheduling-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidInput) {
			h.logger.Warn("PUT /scheduling-config - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /scheduling-config - Failed to save config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /scheduling-config - Config saved: config_id=%d, level=%s", result.ID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
