package availability

// Reason причина недоступности слота
type Reason string

const (
	// ReasonAvailable слот свободен
	ReasonAvailable Reason = "available"

	// ReasonDayClosed выходной по недельному правилу
	ReasonDayClosed Reason = "day_closed"

	// ReasonTimeOff на эту дату назначен выходной день
	ReasonTimeOff Reason = "time_off"

	// ReasonOutsideHours слот не помещается в рабочее окно
	ReasonOutsideHours Reason = "outside_working_hours"

	// ReasonLunch слот пересекается с обеденным перерывом
	ReasonLunch Reason = "lunch_break"

	// ReasonConflict слот пересекается с существующей записью
	ReasonConflict Reason = "appointment_conflict"
)

// CheckResult результат проверки конкретного слота
type CheckResult struct {
	Available bool
	Reason    Reason
}
