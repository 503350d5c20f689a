package domain

import "time"

// Service represents a bookable barbershop service.
// DurationMinutes is the sole driver of slot length at booking time.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
