package get_appointment_by_reference

import (
	"context"

	"github.com/barbernet/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByReference(ctx context.Context, ref string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
