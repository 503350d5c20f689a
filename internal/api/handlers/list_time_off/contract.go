package list_time_off

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTimeOff(ctx context.Context, barberID int64) (*models.TimeOffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
