package domain

import (
	"time"

	"github.com/travelparadise/TP-VisitService/pkg/types"
)

// VisitStatus represents the lifecycle status of a visit
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "scheduled"
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
	VisitCancelled  VisitStatus = "cancelled"
)

// visitTransitions допустимые переходы статусов визита.
// completed и cancelled - терминальные состояния.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitScheduled:  {VisitInProgress, VisitCancelled},
	VisitInProgress: {VisitCompleted, VisitCancelled},
}

// CanTransitionTo reports whether a status change to next is legal
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	for _, allowed := range visitTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are legal
func (s VisitStatus) IsTerminal() bool {
	return len(visitTransitions[s]) == 0
}

// Visit represents a scheduled guided excursion to a place led by a guide
type Visit struct {
	ID              int64
	GuideID         int64
	PlaceID         int64
	Location        string // Денормализованное название места для агрегаций
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          VisitStatus

	GeneralComment     *string
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the derived end of the visit: startTime + duration.
// The end time is never stored; it is recomputed from its inputs so it can
// never drift from them.
func (v *Visit) EndTime() (types.TimeString, error) {
	return v.StartTime.AddMinutes(v.DurationMinutes)
}

// Window returns the half-open [StartTime, EndTime) window of the visit
func (v *Visit) Window() TimeWindow {
	return TimeWindow{Start: v.StartTime, DurationMinutes: v.DurationMinutes}
}

// IsCancelled returns true if the visit has been cancelled
func (v *Visit) IsCancelled() bool {
	return v.Status == VisitCancelled
}

// VisitsFilter фильтр для выборки визитов
type VisitsFilter struct {
	GuideID          *int64
	Date             *time.Time // Конкретный день
	StartDate        *time.Time // Начало периода
	EndDate          *time.Time // Конец периода
	Status           *VisitStatus
	ExcludeCancelled bool // Исключить отменённые (для проверок доступности)
}
