package get_beneficiary

import (
	"context"

	"github.com/m04kA/SMC-VaccinationService/internal/service/beneficiaries/models"
)

type BeneficiaryService interface {
	GetByID(ctx context.Context, id int64) (*models.BeneficiaryDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
