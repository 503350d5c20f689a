package models

import (
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/ptr"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Request модели

// DayRuleInput правило одного дня недели при обновлении расписания
type DayRuleInput struct {
	Weekday    int                  `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	StartTime  timeofday.TimeOfDay  `json:"startTime"`
	EndTime    timeofday.TimeOfDay  `json:"endTime"`
	LunchStart *timeofday.TimeOfDay `json:"lunchStart,omitempty"`
	LunchEnd   *timeofday.TimeOfDay `json:"lunchEnd,omitempty"`
	Closed     bool                 `json:"closed"`
}

// UpsertWeekRequest запрос на обновление недельного расписания мастера
type UpsertWeekRequest struct {
	Days []DayRuleInput `json:"days"`
}

// AddTimeOffRequest запрос на добавление выходного дня
type AddTimeOffRequest struct {
	Date   string  `json:"date"` // "2026-09-07"
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// DayRuleResponse правило одного дня недели
type DayRuleResponse struct {
	Weekday     int     `json:"weekday"`
	WeekdayName string  `json:"weekdayName"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	LunchStart  *string `json:"lunchStart,omitempty"`
	LunchEnd    *string `json:"lunchEnd,omitempty"`
	Closed      bool    `json:"closed"`
	IsDefault   bool    `json:"isDefault"` // Правило не настроено, показано значение по умолчанию
}

// WeekResponse недельное расписание мастера, всегда семь дней
// начиная с понедельника
type WeekResponse struct {
	BarberID int64             `json:"barberId"`
	Days     []DayRuleResponse `json:"days"`
}

// TimeOffResponse выходной день мастера
type TimeOffResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// TimeOffListResponse список выходных дней мастера
type TimeOffListResponse struct {
	BarberID int64             `json:"barberId"`
	TimeOffs []TimeOffResponse `json:"timeOffs"`
}

// OverviewDayResponse агрегированное расписание магазина на день недели
type OverviewDayResponse struct {
	Weekday     int     `json:"weekday"`
	WeekdayName string  `json:"weekdayName"`
	Closed      bool    `json:"closed"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	LunchStart  *string `json:"lunchStart,omitempty"`
	LunchEnd    *string `json:"lunchEnd,omitempty"`
}

// WeeklyOverviewResponse агрегированное недельное расписание магазина
type WeeklyOverviewResponse struct {
	Days []OverviewDayResponse `json:"days"`
}

// FromDomainRule конвертирует domain правило в response
func FromDomainRule(rule *domain.WorkingHourRule, isDefault bool) DayRuleResponse {
	resp := DayRuleResponse{
		Weekday:     int(rule.Weekday),
		WeekdayName: rule.Weekday.String(),
		StartTime:   rule.StartTime.String(),
		EndTime:     rule.EndTime.String(),
		Closed:      rule.Closed,
		IsDefault:   isDefault,
	}
	if rule.HasLunch() {
		resp.LunchStart = ptr.Ptr(rule.LunchStart.String())
		resp.LunchEnd = ptr.Ptr(rule.LunchEnd.String())
	}
	return resp
}

// FromDomainTimeOff конвертирует domain выходной в response
func FromDomainTimeOff(t *domain.TimeOff) TimeOffResponse {
	return TimeOffResponse{
		ID:     t.ID,
		Date:   t.Date.Format(domain.DateFormat),
		Reason: t.Reason,
	}
}

// ToDomainRule конвертирует input в domain правило
func (d *DayRuleInput) ToDomainRule(barberID int64) *domain.WorkingHourRule {
	return &domain.WorkingHourRule{
		BarberID:   barberID,
		Weekday:    time.Weekday(d.Weekday),
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		LunchStart: d.LunchStart,
		LunchEnd:   d.LunchEnd,
		Closed:     d.Closed,
	}
}
