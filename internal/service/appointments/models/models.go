package models

import (
	"errors"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	BarberID         *int64     `json:"barberId,omitempty"`
	ServiceID        *int64     `json:"serviceId,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarberID:         r.BarberID,
		ServiceID:        r.ServiceID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainStatus конвертирует строковый статус в domain.AppointmentStatus
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	ServiceID     int64  `json:"serviceId"`
	BarberID      int64  `json:"barberId"`
	Date          string `json:"date"`      // "2026-09-07"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "10:45"
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            a.ID,
		Reference:     a.Reference.String(),
		ServiceID:     a.ServiceID,
		BarberID:      a.BarberID,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime.String(),
		EndTime:       a.EndTime.String(),
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
