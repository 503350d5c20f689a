package domain

import "time"

// Barber represents a barber working at the shop.
// Deactivation hides the barber from booking but keeps all history.
type Barber struct {
	ID       int64
	Name     string
	Email    *string
	Phone    *string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
