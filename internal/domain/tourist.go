package domain

import "time"

// Tourist represents a named attendee attached to a visit,
// tracked for presence
type Tourist struct {
	ID        int64
	VisitID   int64
	FirstName string
	LastName  string
	IsPresent bool
	Comment   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PresenceStats агрегат посещаемости по группе визитов
type PresenceStats struct {
	TotalTourists   int
	PresentTourists int
}

// Rate returns the presence rate as a percentage (0-100).
// Defined as 0 when there are no tourists at all.
func (s PresenceStats) Rate() float64 {
	if s.TotalTourists == 0 {
		return 0
	}
	return float64(s.PresentTourists) / float64(s.TotalTourists) * 100
}
