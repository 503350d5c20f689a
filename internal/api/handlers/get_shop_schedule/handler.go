package get_shop_schedule

import (
	"net/http"

	"github.com/barbernet/booking-service/internal/api/handlers"
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

// Handle GET /api/v1/schedule
// Возвращает агрегированное недельное расписание магазина по всем
// активным барберам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.WeeklyOverview(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to build weekly overview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Weekly overview retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
