package get_available_slots

import (
	"time"

	"github.com/barbernet/booking-service/pkg/timeofday"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID  int64     // ID барбера
	ServiceID int64     // ID услуги (определяет длительность слота)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	BarberID        int64
	ServiceID       int64
	DurationMinutes int                   // Длительность услуги
	Slots           []timeofday.TimeOfDay // Времена начала доступных слотов
}
