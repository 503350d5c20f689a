package models

import (
	"github.com/barbernet/booking-service/internal/domain"
)

// Request модели

// CreateBarberRequest запрос на создание мастера
type CreateBarberRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateBarberRequest запрос на обновление мастера, nil поля не меняются
type UpdateBarberRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// UpdateServiceRequest запрос на обновление услуги, nil поля не меняются
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// Response модели

// BarberResponse ответ с данными мастера
type BarberResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"isActive"`
}

// BarberListResponse ответ со списком мастеров
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
	Total   int              `json:"total"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	IsActive        bool    `json:"isActive"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainBarber конвертирует domain модель мастера в response
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	return &BarberResponse{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		IsActive: b.IsActive,
	}
}

// FromDomainBarberList конвертирует список мастеров в response
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	items := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		items = append(items, *FromDomainBarber(b))
	}
	return &BarberListResponse{Barbers: items, Total: len(items)}
}

// FromDomainService конвертирует domain модель услуги в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}

// FromDomainServiceList конвертирует список услуг в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	items := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: items, Total: len(items)}
}
