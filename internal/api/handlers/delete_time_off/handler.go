package delete_time_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/schedule"
)

const (
	msgInvalidBarberID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound  = "мастер не найден"
	msgNotFound        = "выходной на эту дату не найден"
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

// Handle DELETE /api/v1/admin/barbers/{barberId}/time-off/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/barbers/{id}/time-off/{date} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	date := vars["date"]

	if err := h.service.RemoveTimeOff(r.Context(), barberID, date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("DELETE /admin/barbers/{id}/time-off/{date} - Barber not found: id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrTimeOffNotFound):
			h.logger.Warn("DELETE /admin/barbers/{id}/time-off/{date} - Time off not found: barber_id=%d, date=%s",
				barberID, date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/barbers/{id}/time-off/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /admin/barbers/{id}/time-off/{date} - Failed to remove time off: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/barbers/{id}/time-off/{date} - Time off removed: barber_id=%d, date=%s", barberID, date)
	w.WriteHeader(http.StatusNoContent)
}
