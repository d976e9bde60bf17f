package domain

import "github.com/travelparadise/TP-VisitService/pkg/types"

// TimeWindow полуоткрытое временное окно [Start, Start+Duration) внутри одного дня
type TimeWindow struct {
	Start           types.TimeString
	DurationMinutes int
}

// End returns the exclusive end of the window
func (w TimeWindow) End() (types.TimeString, error) {
	return w.Start.AddMinutes(w.DurationMinutes)
}

// Overlaps reports whether two half-open windows intersect.
// Back-to-back windows (one ends exactly where the other starts) do NOT
// overlap: the comparison uses strict inequalities.
//
// Примеры:
// - [10:00, 11:00) и [10:30, 11:30) → пересекаются
// - [10:00, 11:00) и [11:00, 12:00) → НЕ пересекаются (встык)
func (w TimeWindow) Overlaps(other TimeWindow) (bool, error) {
	wEnd, err := w.End()
	if err != nil {
		return false, err
	}
	otherEnd, err := other.End()
	if err != nil {
		return false, err
	}
	return w.Start.IsBefore(otherEnd) && wEnd.IsAfter(other.Start), nil
}
