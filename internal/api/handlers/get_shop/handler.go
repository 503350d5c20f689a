package get_shop

import (
	"net/http"

	"github.com/barbernet/booking-service/internal/api/handlers"
	"github.com/barbernet/booking-service/internal/service/shopconfig/models"
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

// ShopResponse HTTP response model: брендинг плюс настройки слотов
type ShopResponse struct {
	Info        models.InfoResponse `json:"info"`
	SlotMinutes int                 `json:"slotMinutes"`
}

// Handle GET /api/v1/shop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetInfo(r.Context())
	if err != nil {
		h.logger.Error("GET /shop - Failed to get shop info: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /shop - Failed to get shop settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shop - Shop info retrieved")
	handlers.RespondJSON(w, http.StatusOK, &ShopResponse{
		Info:        *info,
		SlotMinutes: settings.SlotMinutes,
	})
}
