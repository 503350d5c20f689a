package update_working_hours

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertWeek(ctx context.Context, barberID int64, req *models.UpsertWeekRequest) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
