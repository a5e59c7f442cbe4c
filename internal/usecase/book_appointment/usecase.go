package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-VaccinationService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-VaccinationService/internal/rules"
)

const (
	outcomeAdmitted            = "admitted"
	outcomeBeneficiaryNotFound = "beneficiary_not_found"
	outcomeLockTimeout         = "lock_timeout"

	// DefaultLockTimeout время ожидания блокировки по умолчанию
	DefaultLockTimeout = 5 * time.Second
)

// UseCase use case для записи на дозу вакцины
type UseCase struct {
	appointmentRepo AppointmentRepository
	beneficiaryRepo BeneficiaryRepository
	txManager       TransactionManager
	locker          Locker
	recorder        DecisionRecorder
	timeProvider    TimeProvider
	logger          Logger
	lockTimeout     time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	beneficiaryRepo BeneficiaryRepository,
	txManager TransactionManager,
	locker Locker,
	recorder DecisionRecorder,
	lockTimeout time.Duration,
	logger Logger,
) *UseCase {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		beneficiaryRepo: beneficiaryRepo,
		txManager:       txManager,
		locker:          locker,
		recorder:        recorder,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		lockTimeout:     lockTimeout,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case записи
// Проверка правил и вставка выполняются под блокировками (центр+дата, получатель)
// в сериализуемой транзакции, поэтому параллельные записи не превышают лимиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: beneficiary=%d, date=%s, slot=%s, dose=%d, center=%s",
		req.BeneficiaryID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.Dose, req.Center)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Захватываем блокировки
	unlock, err := uc.lock(ctx, req)
	if err != nil {
		uc.recordFailure(err)
		return nil, err
	}
	defer unlock()

	var result *domain.Appointment

	// 3. Проверяем правила и сохраняем запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Правила записи
		draft, err := rules.EvaluateBooking(txCtx, rules.BookingRequest{
			BeneficiaryID: req.BeneficiaryID,
			Date:          req.Date,
			TimeSlot:      req.TimeSlot,
			Dose:          req.Dose,
			Center:        req.Center,
		}, now, uc.appointmentRepo)
		if err != nil {
			return err
		}

		// 3.2. Получатель должен быть зарегистрирован
		exists, err := uc.beneficiaryRepo.Exists(txCtx, req.BeneficiaryID)
		if err != nil {
			return fmt.Errorf("%w: failed to check beneficiary: %w", ErrInternal, err)
		}
		if !exists {
			return ErrBeneficiaryNotFound
		}

		// 3.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, draft)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrBeneficiaryNotFound) {
				return ErrBeneficiaryNotFound
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.recordFailure(err)
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)
	uc.recorder.RecordBookingDecision(outcomeAdmitted)

	return &Response{
		ID:            result.ID,
		BeneficiaryID: result.BeneficiaryID,
		Date:          result.Date,
		TimeSlot:      result.TimeSlot,
		Dose:          result.Dose,
		Center:        result.Center,
		CreatedAt:     result.CreatedAt,
	}, nil
}

func (uc *UseCase) lock(ctx context.Context, req *Request) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()

	unlock, err := uc.locker.Lock(lockCtx, LockKeys(req)...)
	if err == nil {
		return unlock, nil
	}

	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, fmt.Errorf("%w: waited %s", ErrLockTimeout, uc.lockTimeout)
	}
	return nil, fmt.Errorf("%w: failed to acquire booking lock: %w", ErrInternal, err)
}

// recordFailure логирует отказ и увеличивает соответствующий счётчик
func (uc *UseCase) recordFailure(err error) {
	switch {
	case rules.IsRejection(err):
		uc.logger.Warn("BookAppointment: rejected: %v", err)
		uc.recorder.RecordBookingDecision(string(rules.Reason(err)))
	case errors.Is(err, ErrBeneficiaryNotFound):
		uc.logger.Warn("BookAppointment: %v", err)
		uc.recorder.RecordBookingDecision(outcomeBeneficiaryNotFound)
	case errors.Is(err, ErrLockTimeout):
		uc.logger.Warn("BookAppointment: %v", err)
		uc.recorder.RecordBookingDecision(outcomeLockTimeout)
	default:
		uc.logger.Error("BookAppointment: failed: %v", err)
		uc.recorder.RecordBookingDecision(string(rules.ReasonInternalFault))
	}
}

// LockKeys ключи блокировки записи: центр на дату и получатель
func LockKeys(req *Request) []string {
	date := domain.DateOnly(req.Date).Format("2006-01-02")
	return []string{
		fmt.Sprintf("center:%s:%s", req.Center, date),
		fmt.Sprintf("beneficiary:%d", req.BeneficiaryID),
	}
}
