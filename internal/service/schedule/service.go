package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	timeoffRepo "github.com/barbernet/booking-service/internal/infra/storage/timeoff"
	"github.com/barbernet/booking-service/internal/service/schedule/models"
	"github.com/barbernet/booking-service/pkg/ptr"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Service сервис управления расписанием: недельные правила мастеров,
// выходные дни и агрегированное расписание магазина
type Service struct {
	ruleRepo    RuleRepository
	timeOffRepo TimeOffRepository
	barberRepo  BarberRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	ruleRepo RuleRepository,
	timeOffRepo TimeOffRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		timeOffRepo: timeOffRepo,
		barberRepo:  barberRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetWeek возвращает недельное расписание мастера. Ненастроенные дни
// заполняются правилом по умолчанию и помечаются isDefault.
func (s *Service) GetWeek(ctx context.Context, barberID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching week for barber=%d", barberID)

	if err := s.ensureBarberExists(ctx, barberID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	configured := make(map[time.Weekday]*domain.WorkingHourRule, len(rules))
	for _, rule := range rules {
		configured[rule.Weekday] = rule
	}

	days := make([]models.DayRuleResponse, 0, len(domain.WeekdaysMondayFirst))
	for _, weekday := range domain.WeekdaysMondayFirst {
		if rule, ok := configured[weekday]; ok {
			days = append(days, models.FromDomainRule(rule, false))
			continue
		}
		defaultRule := domain.DefaultRule(barberID, weekday)
		days = append(days, models.FromDomainRule(&defaultRule, true))
	}

	return &models.WeekResponse{BarberID: barberID, Days: days}, nil
}

// UpsertWeek заменяет недельное расписание мастера. Все дни сохраняются
// в одной транзакции: неделя либо обновляется целиком, либо не меняется.
func (s *Service) UpsertWeek(ctx context.Context, barberID int64, req *models.UpsertWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpsertWeek: updating week for barber=%d, days=%d", barberID, len(req.Days))

	if err := s.ensureBarberExists(ctx, barberID); err != nil {
		return nil, err
	}

	if err := validateWeek(req); err != nil {
		s.logger.Warn("UpsertWeek: validation failed for barber=%d: %v", barberID, err)
		return nil, err
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, day := range req.Days {
			if err := s.ruleRepo.Upsert(txCtx, day.ToDomainRule(barberID)); err != nil {
				s.logger.Error("UpsertWeek: failed to upsert %s for barber=%d: %v",
					time.Weekday(day.Weekday), barberID, err)
				return fmt.Errorf("%w: UpsertWeek - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpsertWeek: successfully updated week for barber=%d", barberID)
	return s.GetWeek(ctx, barberID)
}

// AddTimeOff добавляет выходной день мастеру
func (s *Service) AddTimeOff(ctx context.Context, barberID int64, req *models.AddTimeOffRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("AddTimeOff: barber=%d, date=%s", barberID, req.Date)

	if err := s.ensureBarberExists(ctx, barberID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("AddTimeOff: malformed date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: malformed date", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	created, err := s.timeOffRepo.Create(ctx, &domain.TimeOff{
		BarberID: barberID,
		Date:     date,
		Reason:   req.Reason,
	})
	if err != nil {
		if errors.Is(err, timeoffRepo.ErrTimeOffExists) {
			s.logger.Warn("AddTimeOff: time off already exists for barber=%d date=%s", barberID, req.Date)
			return nil, ErrTimeOffExists
		}
		s.logger.Error("AddTimeOff: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: AddTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddTimeOff: successfully added time off id=%d for barber=%d", created.ID, barberID)
	resp := models.FromDomainTimeOff(created)
	return &resp, nil
}

// ListTimeOff возвращает выходные дни мастера
func (s *Service) ListTimeOff(ctx context.Context, barberID int64) (*models.TimeOffListResponse, error) {
	s.logger.Info("ListTimeOff: fetching time offs for barber=%d", barberID)

	if err := s.ensureBarberExists(ctx, barberID); err != nil {
		return nil, err
	}

	timeOffs, err := s.timeOffRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("ListTimeOff: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListTimeOff - repository error: %v", ErrInternal, err)
	}

	items := make([]models.TimeOffResponse, 0, len(timeOffs))
	for _, t := range timeOffs {
		items = append(items, models.FromDomainTimeOff(t))
	}

	return &models.TimeOffListResponse{BarberID: barberID, TimeOffs: items}, nil
}

// RemoveTimeOff удаляет выходной день мастера
func (s *Service) RemoveTimeOff(ctx context.Context, barberID int64, dateStr string) error {
	s.logger.Info("RemoveTimeOff: barber=%d, date=%s", barberID, dateStr)

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		s.logger.Warn("RemoveTimeOff: malformed date=%s: %v", dateStr, err)
		return fmt.Errorf("%w: malformed date", ErrInvalidInput)
	}

	if err := s.timeOffRepo.Delete(ctx, barberID, date); err != nil {
		if errors.Is(err, timeoffRepo.ErrTimeOffNotFound) {
			s.logger.Warn("RemoveTimeOff: time off not found for barber=%d date=%s", barberID, dateStr)
			return ErrTimeOffNotFound
		}
		s.logger.Error("RemoveTimeOff: repository error for barber=%d: %v", barberID, err)
		return fmt.Errorf("%w: RemoveTimeOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveTimeOff: successfully removed time off for barber=%d date=%s", barberID, dateStr)
	return nil
}

// WeeklyOverview возвращает агрегированное расписание магазина по дням
// недели для витрины. Учитываются только настроенные правила: день закрыт,
// когда ни у одного активного мастера нет правила или все правила закрыты.
// Окно открытого дня - объединение окон мастеров: [min(start), max(end)].
// Общий обед - пересечение обедов тех открытых мастеров, у которых обед
// задан; показывается, только если оно непусто и лежит строго внутри
// агрегированного окна.
func (s *Service) WeeklyOverview(ctx context.Context) (*models.WeeklyOverviewResponse, error) {
	s.logger.Info("WeeklyOverview: building aggregated schedule")

	barbers, err := s.barberRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("WeeklyOverview: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: WeeklyOverview - repository error: %v", ErrInternal, err)
	}

	barberIDs := make([]int64, 0, len(barbers))
	for _, b := range barbers {
		barberIDs = append(barberIDs, b.ID)
	}

	configured := make(map[int64]map[time.Weekday]*domain.WorkingHourRule, len(barbers))
	if len(barberIDs) > 0 {
		rules, err := s.ruleRepo.ListByBarbers(ctx, barberIDs)
		if err != nil {
			s.logger.Error("WeeklyOverview: failed to list rules: %v", err)
			return nil, fmt.Errorf("%w: WeeklyOverview - repository error: %v", ErrInternal, err)
		}
		for _, rule := range rules {
			if configured[rule.BarberID] == nil {
				configured[rule.BarberID] = make(map[time.Weekday]*domain.WorkingHourRule)
			}
			configured[rule.BarberID][rule.Weekday] = rule
		}
	}

	days := make([]models.OverviewDayResponse, 0, len(domain.WeekdaysMondayFirst))
	for _, weekday := range domain.WeekdaysMondayFirst {
		days = append(days, aggregateDay(weekday, barbers, configured))
	}

	return &models.WeeklyOverviewResponse{Days: days}, nil
}

// aggregateDay сводит правила всех активных мастеров на один день недели
func aggregateDay(
	weekday time.Weekday,
	barbers []*domain.Barber,
	configured map[int64]map[time.Weekday]*domain.WorkingHourRule,
) models.OverviewDayResponse {
	resp := models.OverviewDayResponse{
		Weekday:     int(weekday),
		WeekdayName: weekday.String(),
		Closed:      true,
	}

	// Ненастроенный день не участвует в агрегации: правило по умолчанию
	// действует только при расчете слотов, витрина показывает день закрытым
	open := make([]*domain.WorkingHourRule, 0, len(barbers))
	for _, barber := range barbers {
		rule, ok := configured[barber.ID][weekday]
		if !ok || rule.Closed {
			continue
		}
		open = append(open, rule)
	}

	if len(open) == 0 {
		return resp
	}

	start, end := open[0].StartTime, open[0].EndTime
	for _, rule := range open[1:] {
		if rule.StartTime.Before(start) {
			start = rule.StartTime
		}
		if rule.EndTime.After(end) {
			end = rule.EndTime
		}
	}

	resp.Closed = false
	resp.StartTime = ptr.Ptr(start.String())
	resp.EndTime = ptr.Ptr(end.String())

	if lunch, ok := commonLunch(open, start, end); ok {
		resp.LunchStart = ptr.Ptr(lunch.Start.String())
		resp.LunchEnd = ptr.Ptr(lunch.End.String())
	}

	return resp
}

// commonLunch вычисляет пересечение обедов открытых мастеров. Мастера без
// обеда не сужают пересечение; без единого обеда его нет
func commonLunch(open []*domain.WorkingHourRule, windowStart, windowEnd timeofday.TimeOfDay) (timeofday.Interval, bool) {
	var lunch timeofday.Interval
	found := false
	for _, rule := range open {
		ruleLunch, ok := rule.Lunch()
		if !ok {
			continue
		}
		if !found {
			lunch = ruleLunch
			found = true
			continue
		}
		if ruleLunch.Start.After(lunch.Start) {
			lunch.Start = ruleLunch.Start
		}
		if ruleLunch.End.Before(lunch.End) {
			lunch.End = ruleLunch.End
		}
	}

	if !found || !lunch.Start.Before(lunch.End) {
		return timeofday.Interval{}, false
	}
	// Обед на границе окна не показывается
	if !windowStart.Before(lunch.Start) || !lunch.End.Before(windowEnd) {
		return timeofday.Interval{}, false
	}

	return lunch, true
}

func (s *Service) ensureBarberExists(ctx context.Context, barberID int64) error {
	if barberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("schedule: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("schedule: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	return nil
}
