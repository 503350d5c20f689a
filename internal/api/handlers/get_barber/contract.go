package get_barber

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetBarber(ctx context.Context, id int64) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
