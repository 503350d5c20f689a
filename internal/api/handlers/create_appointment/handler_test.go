package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/barbernet/booking-service/internal/usecase/create_appointment"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"barberId": 1,
	"serviceId": 2,
	"date": "2026-09-07",
	"startTime": "10:00",
	"customerEmail": "client@example.com",
	"customerPhone": "+79990001122"
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:            101,
		Reference:     "5e0a1a7b-7d13-4f4f-9a69-3f2a6f8b0c11",
		BarberID:      1,
		ServiceID:     2,
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     timeofday.New(10, 0),
		EndTime:       timeofday.New(10, 45),
		CustomerEmail: "client@example.com",
		CustomerPhone: "+79990001122",
		Status:        "confirmed",
		CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)

	// В use case ушли распарсенные дата и время
	require.NotNil(t, uc.got)
	assert.Equal(t, timeofday.New(10, 0), uc.got.StartTime)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createAppointment.ErrSlotNotAvailable}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "недоступен")
}

func TestHandle_BadJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadTimeFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	body := strings.Replace(validBody, `"10:00"`, `"25:99"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFoundMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"барбер", createAppointment.ErrBarberNotFound},
		{"услуга", createAppointment.ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, noopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(validBody))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
