package domain

import "time"

// ShopSettings single global configuration record
type ShopSettings struct {
	ID          int64
	SlotMinutes int // slot granularity for availability computation
	UpdatedAt   time.Time
}

// Granularity возвращает шаг сетки слотов. Некорректное значение (<= 0)
// заменяется резервным значением, а не приводит к ошибке.
func (s *ShopSettings) Granularity() int {
	if s == nil || s.SlotMinutes <= 0 {
		return FallbackSlotMinutes
	}
	return s.SlotMinutes
}

// ShopInfo branding and contact information shown on the landing page
type ShopInfo struct {
	ID        int64
	SiteName  *string
	Slogan    *string
	AboutUs   *string
	Phone     *string
	Email     *string
	Instagram *string
	Facebook  *string
	Address   *string
	City      *string

	UpdatedAt time.Time
}
