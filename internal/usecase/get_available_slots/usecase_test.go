package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbernet/booking-service/internal/domain"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

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

type fakeSlotProvider struct {
	slots    []timeofday.TimeOfDay
	duration int
}

func (f *fakeSlotProvider) ListSlotsForBooking(_ context.Context, _ int64, _ time.Time, durationMinutes int) ([]timeofday.TimeOfDay, error) {
	f.duration = durationMinutes
	return f.slots, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type env struct {
	barbers  *fakeBarberRepo
	services *fakeServiceRepo
	provider *fakeSlotProvider
}

func newEnv() *env {
	return &env{
		barbers: &fakeBarberRepo{barber: &domain.Barber{
			ID: 1, Name: "Иван", IsActive: true,
		}},
		services: &fakeServiceRepo{service: &domain.Service{
			ID: 2, Name: "Стрижка", Price: 1500, DurationMinutes: 45, IsActive: true,
		}},
		provider: &fakeSlotProvider{slots: []timeofday.TimeOfDay{
			timeofday.New(10, 0), timeofday.New(10, 30),
		}},
	}
}

func (e *env) usecase() *UseCase {
	return NewUseCase(e.barbers, e.services, e.provider, noopLogger{})
}

func validRequest() *Request {
	return &Request{
		BarberID:  1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.usecase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BarberID)
	assert.Equal(t, int64(2), resp.ServiceID)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, []timeofday.TimeOfDay{timeofday.New(10, 0), timeofday.New(10, 30)}, resp.Slots)
	assert.Equal(t, 45, e.provider.duration, "длительность слота берется из услуги")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.ServiceID = 99

	_, err := e.usecase().Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceHidden(t *testing.T) {
	e := newEnv()
	e.services.service.IsActive = false

	_, err := e.usecase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_BarberNotFound(t *testing.T) {
	e := newEnv()
	req := validRequest()
	req.BarberID = 99

	_, err := e.usecase().Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_InactiveBarberHidden(t *testing.T) {
	e := newEnv()
	e.barbers.barber.IsActive = false

	_, err := e.usecase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"нулевой барбер", func(r *Request) { r.BarberID = 0 }},
		{"нулевая услуга", func(r *Request) { r.ServiceID = 0 }},
		{"пустая дата", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			req := validRequest()
			tt.mutate(req)

			_, err := e.usecase().Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
