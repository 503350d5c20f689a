package timeofday

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval возвращается для интервала с start >= end
var ErrInvalidInterval = errors.New("timeofday: interval start must be before end")

// Interval полуоткрытый интервал времени суток [Start, End)
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval создает интервал, отклоняя вырожденные и перевернутые границы
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, err
	}
	if end <= 0 || end > MinutesPerDay {
		return Interval{}, fmt.Errorf("%w: end %d minutes", ErrInvalidTime, int(end))
	}
	if start >= end {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Граничащие интервалы (a.End == b.Start) не пересекаются.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains проверяет, что o целиком лежит внутри i
func (i Interval) Contains(o Interval) bool {
	return o.Start >= i.Start && o.End <= i.End
}

// Duration длительность интервала в минутах
func (i Interval) Duration() int {
	return int(i.End - i.Start)
}

// String форматирует интервал как "HH:MM-HH:MM"
func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}
