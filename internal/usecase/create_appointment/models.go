package create_appointment

import (
	"time"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     int64
	BarberID      int64
	Date          time.Time // Дата записи (без времени)
	StartTime     timeofday.TimeOfDay
	CustomerEmail string
	CustomerPhone string
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	Reference     string // Публичный идентификатор записи (UUID)
	ServiceID     int64
	BarberID      int64
	Date          time.Time
	StartTime     timeofday.TimeOfDay
	EndTime       timeofday.TimeOfDay
	CustomerEmail string
	CustomerPhone string
	Status        string
	CreatedAt     time.Time
}
