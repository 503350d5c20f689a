package create_appointment

import (
	"context"
	"testing"
	"time"

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
	created   *domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *appt
	stored.ID = 101
	stored.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = &stored
	return &stored, nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeServiceRepo struct {
	service *domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeChecker struct {
	result availability.CheckResult
	calls  int
}

func (f *fakeChecker) CheckSlot(_ context.Context, _ int64, _ time.Time, _ timeofday.TimeOfDay, _ int, _ *int64) (*availability.CheckResult, error) {
	f.calls++
	r := f.result
	return &r, nil
}

type fakeMailer struct {
	enabled       bool
	confirmations []mailer.AppointmentMail
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) SendAppointmentConfirmation(m mailer.AppointmentMail) error {
	f.confirmations = append(f.confirmations, m)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

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
	tx           *fakeTxManager
	clock        *fakeClock
}

func newEnv() *env {
	return &env{
		appointments: &fakeAppointmentRepo{},
		barbers: &fakeBarberRepo{barber: &domain.Barber{
			ID: 1, Name: "Иван", IsActive: true,
		}},
		services: &fakeServiceRepo{service: &domain.Service{
			ID: 2, Name: "Стрижка", Price: 1500, DurationMinutes: 45, IsActive: true,
		}},
		checker: &fakeChecker{result: availability.CheckResult{Available: true, Reason: availability.ReasonAvailable}},
		mail:    &fakeMailer{enabled: true},
		tx:      &fakeTxManager{},
		clock:   &fakeClock{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
	}
}

func (e *env) usecase() *UseCase {
	return NewUseCase(e.appointments, e.barbers, e.services, e.checker, e.mail, e.tx, noopLogger{}).
		WithTimeProvider(e.clock)
}

func validRequest() *Request {
	return &Request{
		ServiceID:     2,
		BarberID:      1,
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(10, 0),
		CustomerEmail: "client@example.com",
		CustomerPhone: "+79990001122",
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.usecase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "confirmed", resp.Status)
	// Конец слота зафиксирован: 10:00 + 45 минут
	assert.Equal(t, timeofday.New(10, 45), resp.EndTime)

	require.NotNil(t, e.appointments.created)
	assert.Equal(t, domain.StatusConfirmed, e.appointments.created.Status)
	assert.Equal(t, 1, e.tx.calls)
	assert.Equal(t, 1, e.checker.calls)
}

func TestExecute_SendsConfirmationMail(t *testing.T) {
	e := newEnv()

	_, err := e.usecase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, e.mail.confirmations, 1)
	m := e.mail.confirmations[0]
	assert.Equal(t, "client@example.com", m.CustomerEmail)
	assert.Equal(t, "Иван", m.BarberName)
	assert.Equal(t, "Стрижка", m.ServiceName)
}

func TestExecute_MailerDisabled(t *testing.T) {
	e := newEnv()
	e.mail.enabled = false

	_, err := e.usecase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, e.mail.confirmations)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	e := newEnv()
	e.checker.result = availability.CheckResult{Available: false, Reason: availability.ReasonConflict}

	_, err := e.usecase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, e.appointments.created)
	assert.Empty(t, e.mail.confirmations)
}

func TestExecute_UniqueViolationTranslated(t *testing.T) {
	// Гонка: проверка прошла, но вставка уперлась в уникальный индекс
	e := newEnv()
	e.appointments.createErr = appointmentRepo.ErrSlotTaken

	_, err := e.usecase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, e.mail.confirmations)
}

func TestExecute_InactiveService(t *testing.T) {
	e := newEnv()
	e.services.service.IsActive = false

	_, err := e.usecase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveBarber(t *testing.T) {
	e := newEnv()
	e.barbers.barber.IsActive = false

	_, err := e.usecase().Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := e.usecase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayPassedSlot(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req.StartTime = timeofday.New(10, 0) // сейчас ровно 10:00

	_, err := e.usecase().Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv()
	uc := e.usecase()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero service id", func(r *Request) { r.ServiceID = 0 }},
		{"zero barber id", func(r *Request) { r.BarberID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty email", func(r *Request) { r.CustomerEmail = "  " }},
		{"malformed email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"negative start time", func(r *Request) { r.StartTime = timeofday.TimeOfDay(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
