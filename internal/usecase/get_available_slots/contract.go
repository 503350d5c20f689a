package get_available_slots

import (
	"context"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// BarberRepository контракт для работы с барберами
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ServiceRepository контракт для работы с услугами
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SlotProvider контракт движка доступности
type SlotProvider interface {
	ListSlotsForBooking(ctx context.Context, barberID int64, date time.Time, serviceDurationMinutes int) ([]timeofday.TimeOfDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
