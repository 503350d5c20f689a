package update_shop_settings

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
