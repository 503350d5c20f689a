package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbernet/booking-service/internal/domain"
	settingsRepo "github.com/barbernet/booking-service/internal/infra/storage/settings"
	workingHoursRepo "github.com/barbernet/booking-service/internal/infra/storage/workinghours"
	"github.com/barbernet/booking-service/pkg/ptr"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

type fakeRuleRepo struct {
	rules map[time.Weekday]*domain.WorkingHourRule
}

func (f *fakeRuleRepo) GetByBarberAndWeekday(_ context.Context, _ int64, weekday time.Weekday) (*domain.WorkingHourRule, error) {
	rule, ok := f.rules[weekday]
	if !ok {
		return nil, workingHoursRepo.ErrRuleNotFound
	}
	return rule, nil
}

type fakeTimeOffRepo struct {
	dates map[string]bool
}

func (f *fakeTimeOffRepo) Exists(_ context.Context, _ int64, date time.Time) (bool, error) {
	return f.dates[date.Format(domain.DateFormat)], nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListConfirmedByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	confirmed := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.IsConfirmed() {
			confirmed = append(confirmed, a)
		}
	}
	return confirmed, nil
}

type fakeSettingsRepo struct {
	settings *domain.ShopSettings
}

func (f *fakeSettingsRepo) GetSettings(_ context.Context) (*domain.ShopSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	rules        *fakeRuleRepo
	timeOffs     *fakeTimeOffRepo
	appointments *fakeAppointmentRepo
	settings     *fakeSettingsRepo
}

func newFixture() *fixture {
	return &fixture{
		rules:        &fakeRuleRepo{rules: map[time.Weekday]*domain.WorkingHourRule{}},
		timeOffs:     &fakeTimeOffRepo{dates: map[string]bool{}},
		appointments: &fakeAppointmentRepo{},
		settings:     &fakeSettingsRepo{settings: &domain.ShopSettings{ID: 1, SlotMinutes: 30}},
	}
}

func (f *fixture) service() *Service {
	return NewService(f.rules, f.timeOffs, f.appointments, f.settings, noopLogger{})
}

func confirmedAppt(id int64, date time.Time, start, end timeofday.TimeOfDay) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		BarberID:  1,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

// Понедельник 2026-09-07
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func times(specs ...string) []timeofday.TimeOfDay {
	out := make([]timeofday.TimeOfDay, 0, len(specs))
	for _, s := range specs {
		t, err := timeofday.Parse(s)
		if err != nil {
			panic(err)
		}
		out = append(out, t)
	}
	return out
}

func TestListSlots_PlainWindow(t *testing.T) {
	// Окно 10:00-13:00, шаг 30, услуга 60 минут, без обеда и записей
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(10, 0),
		EndTime:   timeofday.New(13, 0),
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 60)
	require.NoError(t, err)

	assert.Equal(t, times("10:00", "10:30", "11:00", "11:30", "12:00"), slots)
}

func TestListSlots_LunchExcluded(t *testing.T) {
	// Окно 09:00-12:00, обед 10:30-11:00, услуга 30 минут
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:   1,
		Weekday:    time.Monday,
		StartTime:  timeofday.New(9, 0),
		EndTime:    timeofday.New(12, 0),
		LunchStart: ptr.Ptr(timeofday.New(10, 30)),
		LunchEnd:   ptr.Ptr(timeofday.New(11, 0)),
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	// Слот 10:30 выпадает, 10:00 и 11:00 граничат с обедом и остаются
	assert.Equal(t, times("09:00", "09:30", "10:00", "11:00", "11:30"), slots)
}

func TestListSlots_AppointmentExcluded(t *testing.T) {
	// Запись 10:00-11:00 выбивает все пересекающиеся кандидаты
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(12, 0),
	}
	f.appointments.appointments = []*domain.Appointment{
		confirmedAppt(1, monday, timeofday.New(10, 0), timeofday.New(11, 0)),
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 60)
	require.NoError(t, err)

	// 09:30-10:30 пересекается, 11:00-12:00 граничит и остается
	assert.Equal(t, times("09:00", "11:00"), slots)
}

func TestListSlots_CancelledAppointmentIgnored(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(11, 0),
	}
	cancelled := confirmedAppt(1, monday, timeofday.New(9, 0), timeofday.New(10, 0))
	cancelled.Status = domain.StatusCancelled
	f.appointments.appointments = []*domain.Appointment{cancelled}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 60)
	require.NoError(t, err)

	assert.Equal(t, times("09:00", "09:30", "10:00"), slots)
}

func TestListSlots_TimeOff(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(18, 0),
	}
	f.timeOffs.dates[monday.Format(domain.DateFormat)] = true

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestListSlots_DefaultRule(t *testing.T) {
	// Без настроенного правила действует окно 09:00-18:00
	f := newFixture()

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 60)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, timeofday.New(9, 0), slots[0])
	assert.Equal(t, timeofday.New(17, 0), slots[len(slots)-1])
}

func TestListSlots_DefaultRuleSundayClosed(t *testing.T) {
	f := newFixture()
	sunday := monday.AddDate(0, 0, -1)

	slots, err := f.service().ListSlots(context.Background(), 1, sunday, 30)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestListSlots_ClosedRule(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID: 1,
		Weekday:  time.Monday,
		Closed:   true,
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestListSlots_GranularityFallback(t *testing.T) {
	// Некорректный шаг в настройках заменяется резервным (15 минут)
	f := newFixture()
	f.settings.settings = &domain.ShopSettings{ID: 1, SlotMinutes: 0}
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(10, 0),
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 15)
	require.NoError(t, err)

	assert.Equal(t, times("09:00", "09:15", "09:30", "09:45"), slots)
}

func TestListSlots_MissingSettingsUseDefault(t *testing.T) {
	f := newFixture()
	f.settings.settings = nil
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(11, 0),
	}

	slots, err := f.service().ListSlots(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	// Шаг по умолчанию 30 минут
	assert.Equal(t, times("09:00", "09:30", "10:00", "10:30"), slots)
}

func TestListSlots_SlotBounds(t *testing.T) {
	// Каждый слот целиком лежит в рабочем окне
	f := newFixture()
	rule := &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(10, 0),
		EndTime:   timeofday.New(16, 45),
	}
	f.rules.rules[time.Monday] = rule

	for _, duration := range []int{15, 30, 45, 60, 90} {
		slots, err := f.service().ListSlots(context.Background(), 1, monday, duration)
		require.NoError(t, err)

		for _, slot := range slots {
			assert.False(t, slot.Before(rule.StartTime), "duration=%d slot=%s", duration, slot)
			assert.False(t, slot.AddMinutes(duration).After(rule.EndTime), "duration=%d slot=%s", duration, slot)
		}
	}
}

func TestListSlots_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.service().ListSlots(context.Background(), 1, monday, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = f.service().ListSlots(context.Background(), 1, time.Time{}, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListSlotsForBooking_TodayFilter(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(12, 0),
	}

	// Сейчас понедельник 10:00: слоты 09:00, 09:30 и ровно 10:00 отбрасываются
	clock := &fakeClock{now: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)}
	svc := f.service().WithTimeProvider(clock)

	slots, err := svc.ListSlotsForBooking(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.Equal(t, times("10:30", "11:00", "11:30"), slots)
}

func TestListSlotsForBooking_FutureDateUnfiltered(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(10, 0),
	}

	clock := &fakeClock{now: time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)}
	svc := f.service().WithTimeProvider(clock)

	slots, err := svc.ListSlotsForBooking(context.Background(), 1, monday, 30)
	require.NoError(t, err)

	assert.Equal(t, times("09:00", "09:30"), slots)
}

func TestCheckSlot_Reasons(t *testing.T) {
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:   1,
		Weekday:    time.Monday,
		StartTime:  timeofday.New(9, 0),
		EndTime:    timeofday.New(18, 0),
		LunchStart: ptr.Ptr(timeofday.New(13, 0)),
		LunchEnd:   ptr.Ptr(timeofday.New(14, 0)),
	}
	f.appointments.appointments = []*domain.Appointment{
		confirmedAppt(7, monday, timeofday.New(10, 0), timeofday.New(11, 0)),
	}

	tests := []struct {
		name      string
		start     timeofday.TimeOfDay
		available bool
		reason    Reason
	}{
		{"free slot", timeofday.New(11, 0), true, ReasonAvailable},
		{"before opening", timeofday.New(8, 30), false, ReasonOutsideHours},
		{"runs past closing", timeofday.New(17, 30), false, ReasonOutsideHours},
		{"lunch overlap", timeofday.New(13, 30), false, ReasonLunch},
		{"touches lunch start", timeofday.New(12, 0), true, ReasonAvailable},
		{"appointment conflict", timeofday.New(10, 30), false, ReasonConflict},
		{"touches appointment end", timeofday.New(11, 0), true, ReasonAvailable},
	}

	svc := f.service()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.CheckSlot(context.Background(), 1, monday, tt.start, 60, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.Available)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

func TestCheckSlot_TimeOffAndClosed(t *testing.T) {
	f := newFixture()
	f.timeOffs.dates[monday.Format(domain.DateFormat)] = true

	result, err := f.service().CheckSlot(context.Background(), 1, monday, timeofday.New(10, 0), 30, nil)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonTimeOff, result.Reason)

	sunday := monday.AddDate(0, 0, -1)
	result, err = f.service().CheckSlot(context.Background(), 1, sunday, timeofday.New(10, 0), 30, nil)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonDayClosed, result.Reason)
}

func TestCheckSlot_ExcludeOwnAppointment(t *testing.T) {
	// При переносе запись не конфликтует сама с собой
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:  1,
		Weekday:   time.Monday,
		StartTime: timeofday.New(9, 0),
		EndTime:   timeofday.New(18, 0),
	}
	f.appointments.appointments = []*domain.Appointment{
		confirmedAppt(42, monday, timeofday.New(10, 0), timeofday.New(11, 0)),
	}

	svc := f.service()

	result, err := svc.CheckSlot(context.Background(), 1, monday, timeofday.New(10, 30), 60, nil)
	require.NoError(t, err)
	assert.False(t, result.Available)

	result, err = svc.CheckSlot(context.Background(), 1, monday, timeofday.New(10, 30), 60, ptr.Ptr(int64(42)))
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckSlot_AgreesWithListSlots(t *testing.T) {
	// Для каждого кандидата сетки CheckSlot и членство в ListSlots совпадают
	f := newFixture()
	f.rules.rules[time.Monday] = &domain.WorkingHourRule{
		BarberID:   1,
		Weekday:    time.Monday,
		StartTime:  timeofday.New(9, 0),
		EndTime:    timeofday.New(15, 0),
		LunchStart: ptr.Ptr(timeofday.New(12, 0)),
		LunchEnd:   ptr.Ptr(timeofday.New(13, 0)),
	}
	f.appointments.appointments = []*domain.Appointment{
		confirmedAppt(1, monday, timeofday.New(9, 30), timeofday.New(10, 15)),
		confirmedAppt(2, monday, timeofday.New(14, 0), timeofday.New(14, 30)),
	}

	svc := f.service()
	const duration = 45

	slots, err := svc.ListSlots(context.Background(), 1, monday, duration)
	require.NoError(t, err)

	listed := make(map[timeofday.TimeOfDay]bool, len(slots))
	for _, s := range slots {
		listed[s] = true
	}

	for start := timeofday.New(9, 0); !start.After(timeofday.New(15, 0)); start = start.AddMinutes(30) {
		result, err := svc.CheckSlot(context.Background(), 1, monday, start, duration, nil)
		require.NoError(t, err)

		if listed[start] {
			assert.True(t, result.Available, "slot %s listed but check failed: %s", start, result.Reason)
		} else {
			assert.False(t, result.Available, "slot %s not listed but check passed", start)
		}
	}
}
