package get_center_availability

import (
	"context"

	getCenterAvailability "github.com/m04kA/SMC-VaccinationService/internal/usecase/get_center_availability"
)

type GetCenterAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getCenterAvailability.Request) (*getCenterAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
