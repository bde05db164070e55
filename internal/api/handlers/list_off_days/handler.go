package list_off_days

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

const msgInvalidRange = "параметры from и to обязательны, формат YYYY-MM-DD"

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

// Handle GET /api/v1/off-days?from=YYYY-MM-DD&to=YYYY-MM-DD
// from > to даёт пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /off-days - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /off-days - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.ListOffDays(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /off-days - Failed to list off-days: from=%s, to=%s, error=%v",
			query.Get("from"), query.Get("to"), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /off-days - Off-days retrieved: count=%d", len(result.OffDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
