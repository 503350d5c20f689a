package get_appointment_by_reference

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/appointments"
)

const (
	msgInvalidReference = "некорректный код записи"
	msgNotFound         = "запись не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{reference}
// Клиент проверяет свою запись по публичному UUID из письма.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["reference"]

	result, err := h.service.GetByReference(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{reference} - Invalid reference: %s", ref)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{reference} - Appointment not found: reference=%s", ref)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{reference} - Failed to get appointment: reference=%s, error=%v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{reference} - Appointment retrieved: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
