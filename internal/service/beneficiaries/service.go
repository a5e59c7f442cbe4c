package beneficiaries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	beneficiaryRepo "github.com/m04kA/SMC-VaccinationService/internal/infra/storage/beneficiary"
	appointmentModels "github.com/m04kA/SMC-VaccinationService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VaccinationService/internal/service/beneficiaries/models"
)

// Service сервис для чтения получателей
type Service struct {
	beneficiaryRepo BeneficiaryRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса получателей
func NewService(
	beneficiaryRepo BeneficiaryRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		beneficiaryRepo: beneficiaryRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List получает всех зарегистрированных получателей
func (s *Service) List(ctx context.Context) ([]*models.BeneficiaryResponse, error) {
	list, err := s.beneficiaryRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBeneficiaries: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListBeneficiaries: fetched %d beneficiaries", len(list))
	return models.FromDomainBeneficiaryList(list), nil
}

// GetByID получает получателя вместе с его записями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BeneficiaryDetailsResponse, error) {
	s.logger.Info("GetBeneficiary: fetching beneficiary id=%d", id)

	b, err := s.beneficiaryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, beneficiaryRepo.ErrBeneficiaryNotFound) {
			s.logger.Warn("GetBeneficiary: beneficiary id=%d not found", id)
			return nil, ErrBeneficiaryNotFound
		}
		s.logger.Error("GetBeneficiary: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{BeneficiaryID: &id})
	if err != nil {
		s.logger.Error("GetBeneficiary: failed to list appointments for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list appointments: %w", ErrInternal, err)
	}

	return &models.BeneficiaryDetailsResponse{
		BeneficiaryResponse: *models.FromDomainBeneficiary(b),
		Appointments:        appointmentModels.FromDomainAppointmentList(appointments),
	}, nil
}
