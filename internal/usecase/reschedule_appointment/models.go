package reschedule_appointment

import (
	"time"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64
	Date          time.Time // Новая дата (без времени)
	StartTime     timeofday.TimeOfDay
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID            int64
	Reference     string
	ServiceID     int64
	BarberID      int64
	Date          time.Time
	StartTime     timeofday.TimeOfDay
	EndTime       timeofday.TimeOfDay
	CustomerEmail string
	CustomerPhone string
	Status        string
}
