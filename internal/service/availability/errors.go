package availability

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("availability: service duration must be positive")

	// ErrInvalidDate возвращается при нулевой дате
	ErrInvalidDate = errors.New("availability: date is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
