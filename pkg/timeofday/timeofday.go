// Package timeofday предоставляет типы для работы со временем суток
// в минутах от полуночи. Время хранится в БД как целое число минут,
// чтобы сравнения и арифметика оставались точными.
package timeofday

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	// Format формат времени для сериализации (HH:MM)
	Format = "15:04"
)

var (
	// ErrInvalidTime возвращается при значении вне диапазона [0, 1440)
	ErrInvalidTime = errors.New("timeofday: value out of range")

	// ErrInvalidFormat возвращается при некорректной строке времени
	ErrInvalidFormat = errors.New("timeofday: invalid time string format")
)

// TimeOfDay время суток в минутах от полуночи [0, 1440)
type TimeOfDay int

// New создает TimeOfDay из часов и минут
func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Parse парсит строку формата "HH:MM"
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return New(t.Hour(), t.Minute()), nil
}

// FromTime извлекает время суток из time.Time (секунды отбрасываются)
func FromTime(t time.Time) TimeOfDay {
	return New(t.Hour(), t.Minute())
}

// Valid проверяет, что значение лежит в диапазоне суток
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Validate возвращает ошибку для значения вне диапазона суток
func (t TimeOfDay) Validate() error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d minutes", ErrInvalidTime, int(t))
	}
	return nil
}

// Hour возвращает часы (0-23)
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуты внутри часа (0-59)
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// AddMinutes возвращает время, сдвинутое на m минут.
// Результат может выйти за пределы суток - это допустимо для
// промежуточных вычислений и отсекается проверкой Valid.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// Before строгое "раньше"
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t < o
}

// After строгое "позже"
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t > o
}

// String форматирует время как "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON сериализует время в строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON парсит время из строки "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer - в БД хранится число минут
func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
		return nil
	case nil:
		return fmt.Errorf("%w: NULL value", ErrInvalidTime)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTime, src)
	}
}
