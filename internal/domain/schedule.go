package domain

import (
	"time"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// WorkingHourRule weekly working-hour rule of a barber.
// At most one rule exists per (barber, weekday). When Closed is true the
// window fields are ignored. The lunch window, when present, is a strict
// sub-interval of the work window.
type WorkingHourRule struct {
	ID       int64
	BarberID int64
	Weekday  time.Weekday

	StartTime timeofday.TimeOfDay
	EndTime   timeofday.TimeOfDay

	LunchStart *timeofday.TimeOfDay
	LunchEnd   *timeofday.TimeOfDay

	Closed bool
}

// HasLunch returns true if the rule defines a lunch break
func (r *WorkingHourRule) HasLunch() bool {
	return r.LunchStart != nil && r.LunchEnd != nil
}

// Window returns the work window [StartTime, EndTime)
func (r *WorkingHourRule) Window() timeofday.Interval {
	return timeofday.Interval{Start: r.StartTime, End: r.EndTime}
}

// Lunch returns the lunch window and whether it is present
func (r *WorkingHourRule) Lunch() (timeofday.Interval, bool) {
	if !r.HasLunch() {
		return timeofday.Interval{}, false
	}
	return timeofday.Interval{Start: *r.LunchStart, End: *r.LunchEnd}, true
}

// DefaultRule возвращает правило по умолчанию для барбера без настроенного
// расписания: 09:00-18:00, воскресенье - выходной
func DefaultRule(barberID int64, weekday time.Weekday) WorkingHourRule {
	return WorkingHourRule{
		BarberID:  barberID,
		Weekday:   weekday,
		StartTime: timeofday.New(DefaultOpenHour, 0),
		EndTime:   timeofday.New(DefaultCloseHour, 0),
		Closed:    weekday == time.Sunday,
	}
}

// TimeOff full-day exclusion overriding the weekly rule.
// At most one time-off exists per (barber, date).
type TimeOff struct {
	ID       int64
	BarberID int64
	Date     time.Time // date only
	Reason   *string
}
