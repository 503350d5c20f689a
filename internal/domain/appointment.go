package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a confirmed or cancelled booking of a barber's time.
// EndTime is frozen at creation (StartTime + service duration at the moment
// of booking) and is never recomputed if the service duration changes later.
type Appointment struct {
	ID        int64
	Reference uuid.UUID
	ServiceID int64
	BarberID  int64

	Date      time.Time // date only, time part is ignored
	StartTime timeofday.TimeOfDay
	EndTime   timeofday.TimeOfDay

	CustomerEmail string
	CustomerPhone string

	Status    AppointmentStatus
	CreatedAt time.Time
}

// IsConfirmed returns true if the appointment occupies its slot
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Interval returns the occupied time-of-day interval [StartTime, EndTime)
func (a *Appointment) Interval() timeofday.Interval {
	return timeofday.Interval{Start: a.StartTime, End: a.EndTime}
}

// DurationMinutes returns the frozen appointment duration
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime - a.StartTime)
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	BarberID         *int64             // Фильтр по барберу (опционально)
	ServiceID        *int64             // Фильтр по услуге (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}
