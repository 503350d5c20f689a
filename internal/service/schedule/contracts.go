package schedule

import (
	"context"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
)

// RuleRepository интерфейс репозитория рабочих часов
type RuleRepository interface {
	Upsert(ctx context.Context, rule *domain.WorkingHourRule) error
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.WorkingHourRule, error)
	ListByBarbers(ctx context.Context, barberIDs []int64) ([]*domain.WorkingHourRule, error)
}

// TimeOffRepository интерфейс репозитория выходных дней
type TimeOffRepository interface {
	Create(ctx context.Context, t *domain.TimeOff) (*domain.TimeOff, error)
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.TimeOff, error)
	Delete(ctx context.Context, barberID int64, date time.Time) error
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error)
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
