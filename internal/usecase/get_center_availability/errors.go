package get_center_availability

import "errors"

var (
	// ErrInvalidCenter возвращается для неизвестного центра
	ErrInvalidCenter = errors.New("get_center_availability: unknown center")

	// ErrInvalidDate возвращается, когда дата вне окна записи
	ErrInvalidDate = errors.New("get_center_availability: date outside booking window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_center_availability: internal error")
)
