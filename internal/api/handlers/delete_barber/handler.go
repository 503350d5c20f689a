package delete_barber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/catalog"
)

const (
	msgInvalidBarberID      = "некорректный ID мастера"
	msgNotFound             = "мастер не найден"
	msgHasFutureAppointment = "у мастера есть будущие подтвержденные записи"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	if err := h.service.DeleteBarber(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("DELETE /admin/barbers/{id} - Barber not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrHasFutureAppointments):
			h.logger.Warn("DELETE /admin/barbers/{id} - Barber has future appointments: id=%d", id)
			handlers.RespondConflict(w, msgHasFutureAppointment)

		default:
			h.logger.Error("DELETE /admin/barbers/{id} - Failed to delete barber: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/barbers/{id} - Barber deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
