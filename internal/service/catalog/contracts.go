package catalog

import (
	"context"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
)

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	Create(ctx context.Context, b *domain.Barber) (*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error)
	Update(ctx context.Context, b *domain.Barber) error
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

// RuleRepository интерфейс репозитория рабочих часов
type RuleRepository interface {
	DeleteByBarber(ctx context.Context, barberID int64) error
}

// AppointmentCounter интерфейс подсчета будущих подтвержденных записей
type AppointmentCounter interface {
	CountFutureConfirmedByBarber(ctx context.Context, barberID int64, from time.Time) (int, error)
	CountFutureConfirmedByService(ctx context.Context, serviceID int64, from time.Time) (int, error)
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
