package get_beneficiaries

import (
	"context"

	"github.com/m04kA/SMC-VaccinationService/internal/service/beneficiaries/models"
)

type BeneficiaryService interface {
	List(ctx context.Context) ([]*models.BeneficiaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
