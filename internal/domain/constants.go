package domain

import "time"

// Default schedule values, applied when a barber has no configured rule
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 18

	// DefaultSlotMinutes шаг сетки слотов по умолчанию (новая установка)
	DefaultSlotMinutes = 30

	// FallbackSlotMinutes подстраховка при некорректной настройке (<= 0)
	FallbackSlotMinutes = 15
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxReasonLength           = 200
	MaxNameLength             = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// WeekdaysMondayFirst порядок дней недели для админки и агрегированного
// расписания (неделя начинается с понедельника)
var WeekdaysMondayFirst = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// DateOnly обнуляет компонент времени у даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
