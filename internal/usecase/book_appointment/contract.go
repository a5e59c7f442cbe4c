package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/internal/rules"
)

// AppointmentRepository интерфейс репозитория записей
// Счётчики (rules.Lookup) и вставка должны выполняться в одной транзакции
type AppointmentRepository interface {
	rules.Lookup
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// BeneficiaryRepository интерфейс репозитория получателей
type BeneficiaryRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker сериализует записи по ключам (центр+дата, получатель)
// Реализации: keylock (в памяти процесса) и redislock (между экземплярами)
type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

// DecisionRecorder фиксирует исход записи (метрики)
type DecisionRecorder interface {
	RecordBookingDecision(outcome string)
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
