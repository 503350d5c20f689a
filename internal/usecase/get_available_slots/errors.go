package get_available_slots

import "errors"

var (
	// ErrBarberNotFound барбер не найден или неактивен
	ErrBarberNotFound = errors.New("get_available_slots: barber not found")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
