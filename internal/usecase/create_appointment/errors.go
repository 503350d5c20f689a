package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда мастер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrTooLateToBook возвращается при попытке записаться на уже прошедшее время сегодня
	ErrTooLateToBook = errors.New("create_appointment: slot time has already passed")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен.
	// Покрывает и проверку доступности внутри транзакции, и нарушение
	// уникального индекса при гонке. Повторная попытка - решение клиента.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
