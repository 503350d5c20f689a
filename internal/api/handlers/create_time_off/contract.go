package create_time_off

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	AddTimeOff(ctx context.Context, barberID int64, req *models.AddTimeOffRequest) (*models.TimeOffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
