package schedule

import "errors"

var (
	// ErrBarberNotFound возвращается, когда мастер не найден
	ErrBarberNotFound = errors.New("schedule: barber not found")

	// ErrTimeOffExists возвращается при добавлении второго выходного на ту же дату
	ErrTimeOffExists = errors.New("schedule: time off already exists for this date")

	// ErrTimeOffNotFound возвращается при удалении несуществующего выходного
	ErrTimeOffNotFound = errors.New("schedule: time off not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
