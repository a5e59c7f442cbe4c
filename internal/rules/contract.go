package rules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// Lookup запросы к существующим записям, нужные для проверки правил
// Реализуется репозиторием записей; в транзакции запросы видят её снимок
type Lookup interface {
	CountBySlot(ctx context.Context, date time.Time, timeSlot string, center domain.Center) (int, error)
	CountByCenter(ctx context.Context, date time.Time, center domain.Center) (int, error)
	CountByBeneficiary(ctx context.Context, beneficiaryID int64) (int, error)
	// GetFirstDose возвращает запись на первую дозу или nil, если её нет
	GetFirstDose(ctx context.Context, beneficiaryID int64) (*domain.Appointment, error)
	CountByDose(ctx context.Context, date time.Time, center domain.Center, dose int) (int, error)
}
