package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/catalog"
)

const (
	msgInvalidServiceID     = "некорректный ID услуги"
	msgNotFound             = "услуга не найдена"
	msgHasFutureAppointment = "на услугу есть будущие подтвержденные записи"
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

// Handle DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/{id} - Service not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrHasFutureAppointments):
			h.logger.Warn("DELETE /admin/services/{id} - Service has future appointments: id=%d", id)
			handlers.RespondConflict(w, msgHasFutureAppointment)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
