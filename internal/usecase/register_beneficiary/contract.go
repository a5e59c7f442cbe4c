package register_beneficiary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// BeneficiaryRepository интерфейс репозитория получателей
type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *domain.Beneficiary) (*domain.Beneficiary, error)
}

// DecisionRecorder фиксирует исход регистрации (метрики)
type DecisionRecorder interface {
	RecordRegistrationDecision(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
