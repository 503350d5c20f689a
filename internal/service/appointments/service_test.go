package appointments

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
	"github.com/barbernet/booking-service/internal/service/appointments/models"
	"github.com/barbernet/booking-service/pkg/ptr"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

type fakeAppointmentRepo struct {
	byID        map[int64]*domain.Appointment
	lastFilter  *domain.AppointmentsFilter
	listResult  []*domain.Appointment
	cancelCalls []int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByReference(_ context.Context, ref string) (*domain.Appointment, error) {
	for _, appt := range f.byID {
		if appt.Reference.String() == ref {
			copied := *appt
			return &copied, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = &filter
	return f.listResult, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	f.cancelCalls = append(f.cancelCalls, id)
	if appt, ok := f.byID[id]; ok {
		appt.Status = domain.StatusCancelled
		return nil
	}
	return appointmentRepo.ErrAppointmentNotFound
}

type fakeBarberRepo struct{}

func (fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if id != 1 {
		return nil, barberRepo.ErrBarberNotFound
	}
	return &domain.Barber{ID: 1, Name: "Иван"}, nil
}

type fakeServiceRepo struct{}

func (fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if id != 2 {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: 2, Name: "Стрижка"}, nil
}

type fakeMailer struct {
	cancellations []mailer.AppointmentMail
}

func (f *fakeMailer) Enabled() bool { return true }

func (f *fakeMailer) SendAppointmentCancellation(m mailer.AppointmentMail) error {
	f.cancellations = append(f.cancellations, m)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		Reference:     uuid.New(),
		ServiceID:     2,
		BarberID:      1,
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(10, 0),
		EndTime:       timeofday.New(10, 45),
		CustomerEmail: "client@example.com",
		CustomerPhone: "+79990001122",
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newService(repo *fakeAppointmentRepo, mail *fakeMailer) *Service {
	return NewService(repo, fakeBarberRepo{}, fakeServiceRepo{}, mail, noopLogger{})
}

func TestGetByID_RoundTrip(t *testing.T) {
	appt := testAppointment(10)
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{10: appt}}
	svc := newService(repo, &fakeMailer{})

	resp, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, appt.Reference.String(), resp.Reference)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "client@example.com", resp.CustomerEmail)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, &fakeMailer{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByReference(t *testing.T) {
	appt := testAppointment(10)
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{10: appt}}
	svc := newService(repo, &fakeMailer{})

	resp, err := svc.GetByReference(context.Background(), appt.Reference.String())
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)

	_, err = svc.GetByReference(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByReference(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_FilterConversion(t *testing.T) {
	repo := &fakeAppointmentRepo{listResult: []*domain.Appointment{testAppointment(1), testAppointment(2)}}
	svc := newService(repo, &fakeMailer{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		BarberID: ptr.Ptr(int64(1)),
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(1), *repo.lastFilter.BarberID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{}, &fakeMailer{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	appt := testAppointment(10)
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{10: appt}}
	mail := &fakeMailer{}
	svc := newService(repo, mail)

	err := svc.Cancel(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, []int64{10}, repo.cancelCalls)
	require.Len(t, mail.cancellations, 1)
	assert.Equal(t, "client@example.com", mail.cancellations[0].CustomerEmail)
	assert.Equal(t, "Иван", mail.cancellations[0].BarberName)
}

func TestCancel_AlreadyCancelledIsNoop(t *testing.T) {
	appt := testAppointment(10)
	appt.Status = domain.StatusCancelled
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{10: appt}}
	mail := &fakeMailer{}
	svc := newService(repo, mail)

	err := svc.Cancel(context.Background(), 10)
	require.NoError(t, err)

	// Повторная отмена не трогает хранилище и не шлет писем
	assert.Empty(t, repo.cancelCalls)
	assert.Empty(t, mail.cancellations)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, &fakeMailer{})

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
