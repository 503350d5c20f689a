package reschedule_appointment

import (
	"context"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	"github.com/barbernet/booking-service/internal/service/availability"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Reschedule(ctx context.Context, id int64, date time.Time, start, end timeofday.TimeOfDay) error
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	CheckSlot(ctx context.Context, barberID int64, date time.Time, start timeofday.TimeOfDay, serviceDurationMinutes int, excludeAppointmentID *int64) (*availability.CheckResult, error)
}

// Mailer интерфейс отправки писем клиенту
type Mailer interface {
	Enabled() bool
	SendAppointmentReschedule(m mailer.RescheduleMail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
