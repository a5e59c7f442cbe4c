package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	"github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
)

// Service сервис для чтения записей на вакцинацию
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List получает записи с опциональной фильтрацией по получателю, центру и дате
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.AppointmentResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("ListAppointments: invalid filter: %v", err)
		return nil, err
	}

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

func toDomainFilter(req *models.ListRequest) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{BeneficiaryID: req.BeneficiaryID}

	if req.Center != nil {
		center := domain.Center(*req.Center)
		if !center.IsValid() {
			return filter, fmt.Errorf("%w: unknown center %q", ErrInvalidInput, *req.Center)
		}
		filter.Center = &center
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return filter, fmt.Errorf("%w: date must be DD-MM-YYYY", ErrInvalidInput)
		}
		filter.Date = &date
	}

	return filter, nil
}
