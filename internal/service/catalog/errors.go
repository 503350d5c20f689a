package catalog

import "errors"

var (
	// ErrBarberNotFound возвращается, когда мастер не найден
	ErrBarberNotFound = errors.New("catalog: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrHasFutureAppointments возвращается при попытке удалить мастера или
	// услугу с будущими подтвержденными записями. Сначала нужно отменить
	// или перенести записи.
	ErrHasFutureAppointments = errors.New("catalog: has future confirmed appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
