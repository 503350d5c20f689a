package update_barber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/catalog"
	"github.com/barbernet/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidBarberID      = "некорректный ID мастера"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные мастера"
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

// Handle PUT /api/v1/admin/barbers/{barberId}
// Деактивация мастера блокируется, пока у него есть будущие
// подтвержденные записи.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req models.UpdateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/barbers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBarber(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBarberNotFound):
			h.logger.Warn("PUT /admin/barbers/{id} - Barber not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrHasFutureAppointments):
			h.logger.Warn("PUT /admin/barbers/{id} - Barber has future appointments: id=%d", id)
			handlers.RespondConflict(w, msgHasFutureAppointment)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/barbers/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/barbers/{id} - Failed to update barber: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/barbers/{id} - Barber updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
