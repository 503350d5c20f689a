package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	settingsRepo "github.com/barbernet/booking-service/internal/infra/storage/settings"
	workingHoursRepo "github.com/barbernet/booking-service/internal/infra/storage/workinghours"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Service сервис расчета доступных слотов.
// Единственное место, где живет логика пересечения интервалов: список слотов,
// проверка конкретного слота при создании и при переносе записи используют
// один и тот же код.
type Service struct {
	ruleRepo        RuleRepository
	timeOffRepo     TimeOffRepository
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	ruleRepo RuleRepository,
	timeOffRepo TimeOffRepository,
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:        ruleRepo,
		timeOffRepo:     timeOffRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListSlots возвращает отсортированный список свободных времен начала слота
// для мастера на дату. Выходной день или отсутствие рабочего окна дают
// пустой список, а не ошибку.
func (s *Service) ListSlots(ctx context.Context, barberID int64, date time.Time, serviceDurationMinutes int) ([]timeofday.TimeOfDay, error) {
	if err := validateSlotQuery(date, serviceDurationMinutes); err != nil {
		return nil, err
	}

	rule, timeOff, err := s.resolveDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	// Выходной день или нерабочий день недели
	if timeOff || rule.Closed {
		return []timeofday.TimeOfDay{}, nil
	}

	granularity, err := s.resolveGranularity(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListConfirmedByBarberAndDate(ctx, barberID, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("ListSlots: failed to get appointments for barber=%d date=%s: %v",
			barberID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := make([]timeofday.TimeOfDay, 0)
	for _, start := range generateCandidates(rule, granularity, serviceDurationMinutes) {
		slot := timeofday.Interval{Start: start, End: start.AddMinutes(serviceDurationMinutes)}

		if overlapsLunch(rule, slot) {
			continue
		}
		if findConflict(slot, appointments, nil) != nil {
			continue
		}

		slots = append(slots, start)
	}

	return slots, nil
}

// ListSlotsForBooking возвращает слоты для записи клиента: то же, что
// ListSlots, но на сегодняшнюю дату слоты, начинающиеся не позже текущего
// времени, отбрасываются.
func (s *Service) ListSlotsForBooking(ctx context.Context, barberID int64, date time.Time, serviceDurationMinutes int) ([]timeofday.TimeOfDay, error) {
	slots, err := s.ListSlots(ctx, barberID, date, serviceDurationMinutes)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if !domain.SameDay(date, now) {
		return slots, nil
	}

	cutoff := timeofday.FromTime(now)
	upcoming := make([]timeofday.TimeOfDay, 0, len(slots))
	for _, slot := range slots {
		if slot.After(cutoff) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming, nil
}

// CheckSlot проверяет доступность конкретного слота. Недоступность -
// значение результата, а не ошибка. excludeAppointmentID исключает запись
// из проверки конфликтов (перенос на пересекающееся с собой время).
func (s *Service) CheckSlot(ctx context.Context, barberID int64, date time.Time, start timeofday.TimeOfDay, serviceDurationMinutes int, excludeAppointmentID *int64) (*CheckResult, error) {
	if err := validateSlotQuery(date, serviceDurationMinutes); err != nil {
		return nil, err
	}

	rule, timeOff, err := s.resolveDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	if timeOff {
		return &CheckResult{Available: false, Reason: ReasonTimeOff}, nil
	}
	if rule.Closed {
		return &CheckResult{Available: false, Reason: ReasonDayClosed}, nil
	}

	slot := timeofday.Interval{Start: start, End: start.AddMinutes(serviceDurationMinutes)}
	if start.Before(rule.StartTime) || slot.End.After(rule.EndTime) {
		return &CheckResult{Available: false, Reason: ReasonOutsideHours}, nil
	}

	if overlapsLunch(rule, slot) {
		return &CheckResult{Available: false, Reason: ReasonLunch}, nil
	}

	appointments, err := s.appointmentRepo.ListConfirmedByBarberAndDate(ctx, barberID, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("CheckSlot: failed to get appointments for barber=%d date=%s: %v",
			barberID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if conflict := findConflict(slot, appointments, excludeAppointmentID); conflict != nil {
		return &CheckResult{Available: false, Reason: ReasonConflict}, nil
	}

	return &CheckResult{Available: true, Reason: ReasonAvailable}, nil
}

// resolveDay получает правило рабочего дня и флаг выходного на дату.
// Отсутствующее правило заменяется правилом по умолчанию.
func (s *Service) resolveDay(ctx context.Context, barberID int64, date time.Time) (*domain.WorkingHourRule, bool, error) {
	timeOff, err := s.timeOffRepo.Exists(ctx, barberID, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("resolveDay: failed to check time off for barber=%d date=%s: %v",
			barberID, date.Format(domain.DateFormat), err)
		return nil, false, fmt.Errorf("%w: failed to check time off: %v", ErrInternal, err)
	}

	rule, err := s.ruleRepo.GetByBarberAndWeekday(ctx, barberID, date.Weekday())
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrRuleNotFound) {
			defaultRule := domain.DefaultRule(barberID, date.Weekday())
			return &defaultRule, timeOff, nil
		}
		s.logger.Error("resolveDay: failed to get rule for barber=%d weekday=%s: %v",
			barberID, date.Weekday(), err)
		return nil, false, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	return rule, timeOff, nil
}

// resolveGranularity получает шаг сетки слотов из настроек магазина.
// Отсутствие строки настроек дает значение по умолчанию.
func (s *Service) resolveGranularity(ctx context.Context) (int, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultSlotMinutes, nil
		}
		s.logger.Error("resolveGranularity: failed to get settings: %v", err)
		return 0, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return settings.Granularity(), nil
}

func validateSlotQuery(date time.Time, serviceDurationMinutes int) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	if serviceDurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
