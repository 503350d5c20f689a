package get_shop

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	GetInfo(ctx context.Context) (*models.InfoResponse, error)
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
