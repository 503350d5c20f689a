package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbernet/booking-service/internal/domain"
	appointmentRepo "github.com/barbernet/booking-service/internal/infra/storage/appointment"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	"github.com/barbernet/booking-service/internal/integrations/mailer"
	"github.com/barbernet/booking-service/internal/service/availability"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

type fakeAppointmentRepo struct {
	appointment     *domain.Appointment
	rescheduleErr   error
	rescheduledTo   *domain.Appointment
	rescheduleCalls int
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *f.appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) Reschedule(_ context.Context, id int64, date time.Time, start, end timeofday.TimeOfDay) error {
	f.rescheduleCalls++
	if f.rescheduleErr != nil {
		return f.rescheduleErr
	}
	updated := *f.appointment
	updated.Date = date
	updated.StartTime = start
	updated.EndTime = end
	updated.Status = domain.StatusConfirmed
	f.rescheduledTo = &updated
	return nil
}

type fakeBarberRepo struct {
	lastCtx context.Context
}

func (f *fakeBarberRepo) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	f.lastCtx = ctx
	if id != 1 {
		return nil, barberRepo.ErrBarberNotFound
	}
	return &domain.Barber{ID: 1, Name: "Иван", IsActive: true}, nil
}

type fakeServiceRepo struct {
	lastCtx context.Context
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	f.lastCtx = ctx
	if id != 2 {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: 2, Name: "Стрижка", DurationMinutes: 60, IsActive: true}, nil
}

type fakeChecker struct {
	result    availability.CheckResult
	excludeID *int64
	duration  int
}

func (f *fakeChecker) CheckSlot(_ context.Context, _ int64, _ time.Time, _ timeofday.TimeOfDay, durationMinutes int, excludeAppointmentID *int64) (*availability.CheckResult, error) {
	f.excludeID = excludeAppointmentID
	f.duration = durationMinutes
	r := f.result
	return &r, nil
}

type fakeMailer struct {
	enabled bool
	sent    []mailer.RescheduleMail
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) SendAppointmentReschedule(m mailer.RescheduleMail) error {
	f.sent = append(f.sent, m)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type env struct {
	appointments *fakeAppointmentRepo
	barbers      *fakeBarberRepo
	services     *fakeServiceRepo
	checker      *fakeChecker
	mail         *fakeMailer
}

func newEnv() *env {
	return &env{
		barbers:  &fakeBarberRepo{},
		services: &fakeServiceRepo{},
		appointments: &fakeAppointmentRepo{appointment: &domain.Appointment{
			ID:            42,
			Reference:     uuid.New(),
			ServiceID:     2,
			BarberID:      1,
			Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:     timeofday.New(10, 0),
			EndTime:       timeofday.New(10, 45),
			CustomerEmail: "client@example.com",
			Status:        domain.StatusConfirmed,
		}},
		checker: &fakeChecker{result: availability.CheckResult{Available: true, Reason: availability.ReasonAvailable}},
		mail:    &fakeMailer{enabled: true},
	}
}

func (e *env) usecase() *UseCase {
	return NewUseCase(e.appointments, e.barbers, e.services, e.checker, e.mail, fakeTxManager{}, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	e := newEnv()
	newDate := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	resp, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          newDate,
		StartTime:     timeofday.New(14, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, timeofday.New(14, 0), resp.StartTime)
	// Длительность из самой записи (45 минут), а не из текущей услуги
	assert.Equal(t, timeofday.New(14, 45), resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 45, e.checker.duration)
}

func TestExecute_ExcludesSelfFromConflictCheck(t *testing.T) {
	e := newEnv()

	// Перенос на время, пересекающееся с собственным: 10:30 при записи 10:00-10:45
	_, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(10, 30),
	})
	require.NoError(t, err)

	require.NotNil(t, e.checker.excludeID)
	assert.Equal(t, int64(42), *e.checker.excludeID)
}

func TestExecute_ConflictLeavesAppointmentUntouched(t *testing.T) {
	e := newEnv()
	e.checker.result = availability.CheckResult{Available: false, Reason: availability.ReasonConflict}

	_, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, e.appointments.rescheduleCalls)
	assert.Empty(t, e.mail.sent)
}

func TestExecute_UniqueViolationTranslated(t *testing.T) {
	e := newEnv()
	e.appointments.rescheduleErr = appointmentRepo.ErrSlotTaken

	_, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledAppointmentReconfirmed(t *testing.T) {
	e := newEnv()
	e.appointments.appointment.Status = domain.StatusCancelled

	resp, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, e.appointments.rescheduledTo)
	assert.Equal(t, domain.StatusConfirmed, e.appointments.rescheduledTo.Status)
}

func TestExecute_SendsRescheduleMailWithOldTime(t *testing.T) {
	e := newEnv()

	_, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})
	require.NoError(t, err)

	require.Len(t, e.mail.sent, 1)
	m := e.mail.sent[0]
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), m.OldDate)
	assert.Equal(t, timeofday.New(10, 0), m.OldStartTime)
	assert.Equal(t, timeofday.New(14, 0), m.StartTime)
}

func TestExecute_MailLookupsCarryRequestContext(t *testing.T) {
	e := newEnv()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request")

	_, err := e.usecase().Execute(ctx, &Request{
		AppointmentID: 42,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})
	require.NoError(t, err)

	// Имена для письма запрашиваются в контексте исходного запроса
	require.NotNil(t, e.barbers.lastCtx)
	assert.Equal(t, "request", e.barbers.lastCtx.Value(ctxKey{}))
	require.NotNil(t, e.services.lastCtx)
	assert.Equal(t, "request", e.services.lastCtx.Value(ctxKey{}))
}

func TestExecute_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.usecase().Execute(context.Background(), &Request{
		AppointmentID: 777,
		Date:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(14, 0),
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv()

	_, err := e.usecase().Execute(context.Background(), &Request{AppointmentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.usecase().Execute(context.Background(), &Request{AppointmentID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
