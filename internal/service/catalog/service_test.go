package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbernet/booking-service/internal/domain"
	barberRepo "github.com/barbernet/booking-service/internal/infra/storage/barber"
	serviceRepo "github.com/barbernet/booking-service/internal/infra/storage/catalogsvc"
	"github.com/barbernet/booking-service/internal/service/catalog/models"
	"github.com/barbernet/booking-service/pkg/ptr"
)

type fakeBarberRepo struct {
	byID    map[int64]*domain.Barber
	nextID  int64
	deleted []int64
}

func (f *fakeBarberRepo) Create(_ context.Context, b *domain.Barber) (*domain.Barber, error) {
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBarberRepo) List(_ context.Context, onlyActive bool) ([]*domain.Barber, error) {
	out := make([]*domain.Barber, 0)
	for _, b := range f.byID {
		if !onlyActive || b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarberRepo) Update(_ context.Context, b *domain.Barber) error {
	if _, ok := f.byID[b.ID]; !ok {
		return barberRepo.ErrBarberNotFound
	}
	copied := *b
	f.byID[b.ID] = &copied
	return nil
}

func (f *fakeBarberRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return barberRepo.ErrBarberNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeServiceRepo struct {
	byID   map[int64]*domain.Service
	nextID int64
}

func (f *fakeServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	f.nextID++
	stored := *s
	stored.ID = f.nextID
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServiceRepo) List(_ context.Context, onlyActive bool) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, s := range f.byID {
		if !onlyActive || s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := f.byID[s.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	copied := *s
	f.byID[s.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRuleRepo struct {
	deletedBarbers []int64
}

func (f *fakeRuleRepo) DeleteByBarber(_ context.Context, barberID int64) error {
	f.deletedBarbers = append(f.deletedBarbers, barberID)
	return nil
}

type fakeCounter struct {
	byBarber  map[int64]int
	byService map[int64]int

	// При заполнении счет идет по записям: учитываются только будущие
	// подтвержденные, как в репозитории
	appointments []*domain.Appointment
}

func (f *fakeCounter) CountFutureConfirmedByBarber(_ context.Context, barberID int64, from time.Time) (int, error) {
	if f.appointments != nil {
		count := 0
		for _, a := range f.appointments {
			if a.BarberID == barberID && a.Status == domain.StatusConfirmed && !a.Date.Before(from) {
				count++
			}
		}
		return count, nil
	}
	return f.byBarber[barberID], nil
}

func (f *fakeCounter) CountFutureConfirmedByService(_ context.Context, serviceID int64, from time.Time) (int, error) {
	if f.appointments != nil {
		count := 0
		for _, a := range f.appointments {
			if a.ServiceID == serviceID && a.Status == domain.StatusConfirmed && !a.Date.Before(from) {
				count++
			}
		}
		return count, nil
	}
	return f.byService[serviceID], nil
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

type env struct {
	barbers  *fakeBarberRepo
	services *fakeServiceRepo
	rules    *fakeRuleRepo
	counter  *fakeCounter
}

func newEnv() *env {
	return &env{
		barbers:  &fakeBarberRepo{byID: map[int64]*domain.Barber{}},
		services: &fakeServiceRepo{byID: map[int64]*domain.Service{}},
		rules:    &fakeRuleRepo{},
		counter:  &fakeCounter{byBarber: map[int64]int{}, byService: map[int64]int{}},
	}
}

func (e *env) service() *Service {
	return NewService(e.barbers, e.services, e.rules, e.counter, noopLogger{})
}

func TestCreateBarber(t *testing.T) {
	e := newEnv()

	resp, err := e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{
		Name:  "  Иван  ",
		Phone: ptr.Ptr("+79990001122"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Иван", resp.Name)
	assert.True(t, resp.IsActive)

	_, err = e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBarber_PartialUpdate(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{Name: "Иван"})
	require.NoError(t, err)

	resp, err := e.service().UpdateBarber(context.Background(), created.ID, &models.UpdateBarberRequest{
		Phone: ptr.Ptr("+79990001122"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Иван", resp.Name)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+79990001122", *resp.Phone)
}

func TestDeleteBarber_GatedOnFutureAppointments(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{Name: "Иван"})
	require.NoError(t, err)

	e.counter.byBarber[created.ID] = 3

	err = e.service().DeleteBarber(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrHasFutureAppointments)
	assert.Empty(t, e.barbers.deleted)

	// После отмены записей удаление проходит и чистит расписание
	e.counter.byBarber[created.ID] = 0
	err = e.service().DeleteBarber(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, e.barbers.deleted)
	assert.Equal(t, []int64{created.ID}, e.rules.deletedBarbers)
}

func TestDeleteBarber_PastAndCancelledDoNotBlock(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{Name: "Иван"})
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)}

	// Прошедшая и отмененная будущая записи историю не охраняют
	e.counter.appointments = []*domain.Appointment{
		{BarberID: created.ID, Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Status: domain.StatusConfirmed},
		{BarberID: created.ID, Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), Status: domain.StatusCancelled},
	}

	err = e.service().WithTimeProvider(clock).DeleteBarber(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, e.barbers.deleted)
}

func TestDeactivateBarber_GatedOnFutureAppointments(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateBarber(context.Background(), &models.CreateBarberRequest{Name: "Иван"})
	require.NoError(t, err)

	e.counter.byBarber[created.ID] = 1

	_, err = e.service().UpdateBarber(context.Background(), created.ID, &models.UpdateBarberRequest{
		IsActive: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrHasFutureAppointments)
}

func TestCreateService_Validation(t *testing.T) {
	e := newEnv()
	svc := e.service()

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: "", Price: 100, DurationMinutes: 30}},
		{"negative price", models.CreateServiceRequest{Name: "Стрижка", Price: -1, DurationMinutes: 30}},
		{"too short", models.CreateServiceRequest{Name: "Стрижка", Price: 100, DurationMinutes: 1}},
		{"too long", models.CreateServiceRequest{Name: "Стрижка", Price: 100, DurationMinutes: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateService_DurationDoesNotTouchAppointments(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", Price: 1500, DurationMinutes: 45,
	})
	require.NoError(t, err)

	// Будущие записи не мешают менять длительность, только деактивации
	e.counter.byService[created.ID] = 5

	resp, err := e.service().UpdateService(context.Background(), created.ID, &models.UpdateServiceRequest{
		DurationMinutes: ptr.Ptr(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)

	_, err = e.service().UpdateService(context.Background(), created.ID, &models.UpdateServiceRequest{
		IsActive: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrHasFutureAppointments)
}

func TestDeleteService_GatedOnFutureAppointments(t *testing.T) {
	e := newEnv()
	created, err := e.service().CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", Price: 1500, DurationMinutes: 45,
	})
	require.NoError(t, err)

	e.counter.byService[created.ID] = 2
	err = e.service().DeleteService(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrHasFutureAppointments)

	e.counter.byService[created.ID] = 0
	err = e.service().DeleteService(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = e.service().GetService(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetBarber_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.service().GetBarber(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
