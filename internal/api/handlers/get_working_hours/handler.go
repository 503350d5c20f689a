package get_working_hours

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
	msgBarberNotFound  = "мастер не найден"
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

// Handle GET /api/v1/admin/barbers/{barberId}/working-hours
// Всегда возвращает семь дней начиная с понедельника, ненастроенные дни
// заполнены правилом по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/working-hours - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.GetWeek(r.Context(), barberID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			h.logger.Warn("GET /admin/barbers/{id}/working-hours - Barber not found: id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /admin/barbers/{id}/working-hours - Failed to get week: id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/barbers/{id}/working-hours - Week retrieved: barber_id=%d", barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
