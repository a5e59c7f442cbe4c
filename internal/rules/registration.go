package rules

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-VaccinationService/internal/domain"
)

// EvaluateRegistration проверяет данные получателя и возвращает черновик для сохранения
// Уникальность SSN проверяет хранилище при вставке
//
// Возраст считается как разница годов: родившийся 31 декабря 1981 года
// 1 января 2026 года уже считается 45-летним
func EvaluateRegistration(req RegistrationRequest, now time.Time) (*domain.Beneficiary, error) {
	if !isDigits(req.SSN, domain.SSNLength) {
		return nil, fmt.Errorf("%w: ssn must be exactly %d digits", ErrInvalidInput, domain.SSNLength)
	}

	if !isDigits(req.Phone, domain.PhoneLength) {
		return nil, fmt.Errorf("%w: phone must be exactly %d digits", ErrInvalidInput, domain.PhoneLength)
	}

	// имя сохраняется как есть, ограничена только длина колонки
	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.DOB.IsZero() {
		return nil, fmt.Errorf("%w: dob is required", ErrInvalidInput)
	}

	draft := &domain.Beneficiary{
		SSN:   req.SSN,
		Name:  req.Name,
		DOB:   domain.DateOnly(req.DOB),
		Phone: req.Phone,
	}

	if age := draft.AgeInYear(now); age < domain.MinBeneficiaryAge {
		return nil, fmt.Errorf("%w: age %d", ErrUnderAge, age)
	}

	return draft, nil
}

// isDigits проверяет, что s состоит ровно из n ASCII-цифр
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
