package beneficiaries

import (
	"context"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// BeneficiaryRepository интерфейс репозитория получателей
type BeneficiaryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Beneficiary, error)
	List(ctx context.Context) ([]*domain.Beneficiary, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
