package book_appointment

import "errors"

var (
	// ErrBeneficiaryNotFound возвращается, когда получатель не зарегистрирован
	ErrBeneficiaryNotFound = errors.New("book_appointment: beneficiary not found")

	// ErrLockTimeout возвращается, если не удалось дождаться блокировки слота
	ErrLockTimeout = errors.New("book_appointment: timed out waiting for booking lock")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
