package delete_time_off

import "context"

type ScheduleService interface {
	RemoveTimeOff(ctx context.Context, barberID int64, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
