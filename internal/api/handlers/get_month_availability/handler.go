package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-SalonAvailability/internal/usecase/get_month_availability"
)

const (
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidYear      = "год обязателен и должен быть числом"
	msgInvalidMonth     = "месяц обязателен и должен быть числом"
	msgNotFound         = "мастер не оказывает эту услугу"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/services/{serviceId}/availability
// Query params: year, month (required). Месяц вне 1..12 даёт пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/services/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/services/{id}/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/services/{id}/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		StaffID:   staffID,
		ServiceID: serviceID,
		Year:      year,
		Month:     month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrStaffServiceNotFound):
			h.logger.Warn("GET /staff/{id}/services/{id}/availability - Staff service not found: staff_id=%d, service_id=%d",
				staffID, serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/services/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /staff/{id}/services/{id}/availability - Failed to get availability: staff_id=%d, service_id=%d, error=%v",
				staffID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/services/{id}/availability - Availability retrieved: staff_id=%d, service_id=%d, days_count=%d",
		staffID, serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
