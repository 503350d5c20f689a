package update_shop_info

import (
	"errors"
	"net/http"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/shopconfig"
	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные магазина"
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

// Handle PUT /api/v1/admin/shop/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shop/info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateInfo(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, shopconfig.ErrInvalidInput):
			h.logger.Warn("PUT /admin/shop/info - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/shop/info - Failed to update info: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/shop/info - Shop info updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
