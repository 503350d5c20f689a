package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/schedule"
	"github.com/barbernet/booking-service/internal/service/schedule/models"
)

const (
	msgInvalidBarberID    = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBarberNotFound     = "мастер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/barbers/{barberId}/working-hours
// Валидация недели атомарна: при ошибке в любом дне ни одно правило
// не сохраняется. Текст ошибки валидации называет день недели.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/working-hours - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.UpsertWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/barbers/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertWeek(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("PUT /admin/barbers/{id}/working-hours - Barber not found: id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/barbers/{id}/working-hours - Invalid rules: %v", err)
			// Текст ошибки называет конкретный день недели и причину
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/barbers/{id}/working-hours - Failed to upsert week: id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/barbers/{id}/working-hours - Week updated: barber_id=%d", barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
