package update_shop_info

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	UpdateInfo(ctx context.Context, req *models.UpdateInfoRequest) (*models.InfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
