package get_center_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// UseCase use case для получения свободных мест центра на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения занятости центра
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCenterAvailability: center=%s, date=%s", req.Center, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if !req.Center.IsValid() {
		uc.logger.Warn("GetCenterAvailability: unknown center %q", req.Center)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCenter, req.Center)
	}

	date := domain.DateOnly(req.Date)
	days := domain.DaysBetween(uc.timeProvider.Now(), date)
	if days < 0 || days > domain.BookingWindowDays {
		uc.logger.Warn("GetCenterAvailability: date %s is %d days from today", date.Format(domain.DateFormat), days)
		return nil, ErrInvalidDate
	}

	// 2. Получаем записи на дату одним снимком
	var appointments []*domain.Appointment
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		appointments, err = uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			Center: &req.Center,
			Date:   &date,
		})
		return err
	})
	if err != nil {
		uc.logger.Error("GetCenterAvailability: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
	}

	// 3. Считаем занятость
	capacity, doses, slots := calculateAvailability(appointments)

	uc.logger.Info("GetCenterAvailability: center=%s, date=%s, booked=%d/%d",
		req.Center, date.Format(domain.DateFormat), capacity.Booked, capacity.Total)

	return &Response{
		Center:   req.Center,
		Date:     date,
		Capacity: capacity,
		Doses:    doses,
		Slots:    slots,
	}, nil
}
