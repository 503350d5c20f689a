package create_time_off

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
	msgTimeOffExists      = "выходной на эту дату уже добавлен"
	msgInvalidInput       = "некорректные данные выходного дня"
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

// Handle POST /api/v1/admin/barbers/{barberId}/time-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/barbers/{id}/time-off - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.AddTimeOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/barbers/{id}/time-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddTimeOff(r.Context(), barberID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("POST /admin/barbers/{id}/time-off - Barber not found: id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrTimeOffExists):
			h.logger.Warn("POST /admin/barbers/{id}/time-off - Time off already exists: barber_id=%d, date=%s",
				barberID, req.Date)
			handlers.RespondConflict(w, msgTimeOffExists)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/barbers/{id}/time-off - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/barbers/{id}/time-off - Failed to add time off: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/barbers/{id}/time-off - Time off added: barber_id=%d, date=%s", barberID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
