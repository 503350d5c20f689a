package schedule

import (
	"fmt"
	"time"

	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

// validateWeek валидирует недельное расписание. Ошибка называет день
// недели, в котором найдена проблема.
func validateWeek(req *models.UpsertWeekRequest) error {
	if len(req.Days) == 0 {
		return fmt.Errorf("%w: week must contain at least one day", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.Days))
	for _, day := range req.Days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d is out of range", ErrInvalidInput, day.Weekday)
		}

		name := time.Weekday(day.Weekday).String()

		if seen[day.Weekday] {
			return fmt.Errorf("%w: %s: duplicate weekday", ErrInvalidInput, name)
		}
		seen[day.Weekday] = true

		if day.Closed {
			continue
		}

		if err := validateDay(&day, name); err != nil {
			return err
		}
	}

	return nil
}

func validateDay(day *models.DayRuleInput, name string) error {
	if err := day.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s: invalid startTime: %v", ErrInvalidInput, name, err)
	}
	if err := day.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s: invalid endTime: %v", ErrInvalidInput, name, err)
	}
	if !day.StartTime.Before(day.EndTime) {
		return fmt.Errorf("%w: %s: startTime must be before endTime", ErrInvalidInput, name)
	}

	// Обед задается либо целиком, либо никак
	if (day.LunchStart == nil) != (day.LunchEnd == nil) {
		return fmt.Errorf("%w: %s: lunch requires both start and end", ErrInvalidInput, name)
	}
	if day.LunchStart == nil {
		return nil
	}

	if err := day.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: %s: invalid lunchStart: %v", ErrInvalidInput, name, err)
	}
	if err := day.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: %s: invalid lunchEnd: %v", ErrInvalidInput, name, err)
	}
	if !day.LunchStart.Before(*day.LunchEnd) {
		return fmt.Errorf("%w: %s: lunchStart must be before lunchEnd", ErrInvalidInput, name)
	}
	if day.LunchStart.Before(day.StartTime) || day.LunchEnd.After(day.EndTime) {
		return fmt.Errorf("%w: %s: lunch must be within working hours", ErrInvalidInput, name)
	}

	return nil
}
