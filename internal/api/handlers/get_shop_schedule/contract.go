package get_shop_schedule

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	WeeklyOverview(ctx context.Context) (*models.WeeklyOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
