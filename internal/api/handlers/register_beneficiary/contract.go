package register_beneficiary

import (
	"context"

	registerBeneficiary "github.com/m04kA/SMC-VaccinationService/internal/usecase/register_beneficiary"
)

type RegisterBeneficiaryUseCase interface {
	Execute(ctx context.Context, req *registerBeneficiary.Request) (*registerBeneficiary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
