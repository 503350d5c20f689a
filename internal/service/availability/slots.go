package availability

import (
	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/pkg/timeofday"
)

// generateCandidates генерирует все кандидаты начала слота для правила.
// Кандидаты идут от начала рабочего окна с шагом granularity, пока слот
// целиком помещается в окно (candidate + duration <= EndTime).
func generateCandidates(rule *domain.WorkingHourRule, granularityMinutes, durationMinutes int) []timeofday.TimeOfDay {
	candidates := make([]timeofday.TimeOfDay, 0)

	current := rule.StartTime
	for {
		end := current.AddMinutes(durationMinutes)
		if end.After(rule.EndTime) {
			break
		}

		candidates = append(candidates, current)
		current = current.AddMinutes(granularityMinutes)
	}

	return candidates
}

// overlapsLunch проверяет пересечение слота с обеденным перерывом правила.
// Интервалы полуоткрытые: слот, граничащий с обедом, пересечением не считается.
func overlapsLunch(rule *domain.WorkingHourRule, slot timeofday.Interval) bool {
	lunch, ok := rule.Lunch()
	if !ok {
		return false
	}
	return slot.Overlaps(lunch)
}

// findConflict возвращает первую подтвержденную запись, пересекающуюся со слотом.
// Запись с ID из excludeID пропускается (перенос собственной записи).
func findConflict(slot timeofday.Interval, appointments []*domain.Appointment, excludeID *int64) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.IsConfirmed() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if slot.Overlaps(appt.Interval()) {
			return appt
		}
	}
	return nil
}
