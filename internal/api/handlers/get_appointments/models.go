package get_appointments

import (
	"strconv"

	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
)

// ToServiceRequest собирает фильтр из query параметров; пустые параметры игнорируются
func ToServiceRequest(beneficiaryIDStr, centerStr, dateStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if beneficiaryIDStr != "" {
		id, err := strconv.ParseInt(beneficiaryIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BeneficiaryID = &id
	}
	if centerStr != "" {
		req.Center = &centerStr
	}
	if dateStr != "" {
		req.Date = &dateStr
	}

	return req, nil
}
