package create_appointment

import (
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	createAppointment "github.com/barbernet/booking-service/internal/usecase/create_appointment"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID      int64  `json:"barberId"`
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"`      // "2026-09-07"
	StartTime     string `json:"startTime"` // "10:00"
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	BarberID      int64  `json:"barberId"`
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := timeofday.Parse(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BarberID:      r.BarberID,
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     startTime,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		BarberID:      resp.BarberID,
		ServiceID:     resp.ServiceID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
