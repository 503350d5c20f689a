package create_appointment

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
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
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
	SendAppointmentConfirmation(m mailer.AppointmentMail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
