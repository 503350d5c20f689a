package availability

import (
	"context"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
)

// RuleRepository интерфейс репозитория рабочих часов
type RuleRepository interface {
	GetByBarberAndWeekday(ctx context.Context, barberID int64, weekday time.Weekday) (*domain.WorkingHourRule, error)
}

// TimeOffRepository интерфейс репозитория выходных дней
type TimeOffRepository interface {
	Exists(ctx context.Context, barberID int64, date time.Time) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListConfirmedByBarberAndDate получает все подтвержденные записи мастера на дату.
	// Внутри транзакции чтение блокирует строки (FOR UPDATE).
	ListConfirmedByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.ShopSettings, error)
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
