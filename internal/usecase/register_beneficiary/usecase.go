package register_beneficiary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
	beneficiaryRepo "github.com/m04kA/SMC-VaccinationService/internal/infra/storage/beneficiary"
	"github.com/m04kA/SMC-VaccinationService/internal/rules"
)

const outcomeRegistered = "registered"

// UseCase use case для регистрации получателя вакцины
type UseCase struct {
	beneficiaryRepo BeneficiaryRepository
	recorder        DecisionRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	beneficiaryRepo BeneficiaryRepository,
	recorder DecisionRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		beneficiaryRepo: beneficiaryRepo,
		recorder:        recorder,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case регистрации
// Нарушение правил возвращается как ошибка из пакета rules, ничего не сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterBeneficiary: ssn=%s, dob=%s", maskSSN(req.SSN), req.DOB.Format(domain.DateFormat))

	// 1. Проверяем правила регистрации
	draft, err := rules.EvaluateRegistration(rules.RegistrationRequest{
		SSN:   req.SSN,
		Name:  req.Name,
		DOB:   req.DOB,
		Phone: req.Phone,
	}, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("RegisterBeneficiary: rejected: %v", err)
		uc.recorder.RecordRegistrationDecision(string(rules.Reason(err)))
		return nil, err
	}

	// 2. Сохраняем получателя, уникальность SSN проверяет БД
	created, err := uc.beneficiaryRepo.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, beneficiaryRepo.ErrDuplicateSSN) {
			uc.logger.Warn("RegisterBeneficiary: ssn=%s already registered", maskSSN(req.SSN))
			uc.recorder.RecordRegistrationDecision(string(rules.ReasonDuplicateKey))
			return nil, fmt.Errorf("%w: ssn already registered", rules.ErrDuplicateKey)
		}
		uc.logger.Error("RegisterBeneficiary: failed to create beneficiary: %v", err)
		uc.recorder.RecordRegistrationDecision(string(rules.ReasonInternalFault))
		return nil, fmt.Errorf("%w: failed to create beneficiary: %w", ErrInternal, err)
	}

	uc.logger.Info("RegisterBeneficiary: successfully registered beneficiary id=%d", created.ID)
	uc.recorder.RecordRegistrationDecision(outcomeRegistered)

	return &Response{
		ID:        created.ID,
		SSN:       created.SSN,
		Name:      created.Name,
		DOB:       created.DOB,
		Phone:     created.Phone,
		CreatedAt: created.CreatedAt,
	}, nil
}

// maskSSN оставляет в логах только последние 4 цифры
func maskSSN(ssn string) string {
	if len(ssn) <= 4 {
		return "****"
	}
	return "*****" + ssn[len(ssn)-4:]
}
