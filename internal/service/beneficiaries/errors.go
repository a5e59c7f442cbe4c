package beneficiaries

import "errors"

var (
	// ErrBeneficiaryNotFound возвращается, когда получатель не найден
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("beneficiaries service: internal error")
)
