package list_barbers

import (
	"net/http"

	"github.com/barbernet/booking-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
	// onlyActive true для публичного каталога, false для админского списка
	onlyActive bool
}

func NewHandler(service CatalogService, logger Logger, onlyActive bool) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		onlyActive: onlyActive,
	}
}

// Handle GET /api/v1/barbers и GET /api/v1/admin/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBarbers(r.Context(), h.onlyActive)
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Barbers listed: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
