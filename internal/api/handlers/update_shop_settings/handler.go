package update_shop_settings

import (
	"errors"
	"net/http"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/shopconfig"
	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "шаг сетки слотов должен быть положительным"
)

type Handler struct {
	service ShopConfigService
	logger  Logger
}

func NewHandler(service ShopConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/shop/settings
// Новый шаг сетки влияет только на генерацию слотов, существующие
// записи не пересчитываются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shop/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, shopconfig.ErrInvalidInput):
			h.logger.Warn("PUT /admin/shop/settings - Invalid slot minutes: %d", req.SlotMinutes)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/shop/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/shop/settings - Settings updated: slot_minutes=%d", result.SlotMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
