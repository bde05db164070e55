package get_scheduling_config

import (
	"strconv"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/scheduling/models"
)

// ToServiceRequest собирает запрос из query параметров; пустой параметр означает NULL
func ToServiceRequest(staffIDStr, serviceIDStr string) (*models.GetConfigRequest, error) {
	staffID, err := parseOptionalID(staffIDStr)
	if err != nil {
		return nil, err
	}
	serviceID, err := parseOptionalID(serviceIDStr)
	if err != nil {
		return nil, err
	}

	return &models.GetConfigRequest{StaffID: staffID, ServiceID: serviceID}, nil
}

func parseOptionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
