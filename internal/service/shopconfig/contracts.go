package shopconfig

import (
	"context"

	"github.com/barbernet/booking-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.ShopSettings, error)
	UpsertSettings(ctx context.Context, slotMinutes int) error
	GetInfo(ctx context.Context) (*domain.ShopInfo, error)
	UpsertInfo(ctx context.Context, info *domain.ShopInfo) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
