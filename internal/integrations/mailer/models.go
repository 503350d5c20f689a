package mailer

import (
	"time"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// AppointmentMail данные записи для письма клиенту
type AppointmentMail struct {
	Reference     string
	CustomerEmail string
	BarberName    string
	ServiceName   string
	Date          time.Time
	StartTime     timeofday.TimeOfDay
	EndTime       timeofday.TimeOfDay
}

// RescheduleMail данные переноса записи: новая запись плюс прежние дата и время
type RescheduleMail struct {
	AppointmentMail
	OldDate      time.Time
	OldStartTime timeofday.TimeOfDay
}
