package register_beneficiary

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_beneficiary: internal error")
)
