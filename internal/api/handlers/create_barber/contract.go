package create_barber

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateBarber(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
