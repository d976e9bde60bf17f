package domain

import "time"

// RatingStatus represents the moderation status of a rating
type RatingStatus string

const (
	RatingPending  RatingStatus = "pending"
	RatingApproved RatingStatus = "approved"
	RatingRejected RatingStatus = "rejected"
	RatingFlagged  RatingStatus = "flagged"
)

// Rating represents a score left by a user for a visit.
// At most one rating exists per (visit, user) pair.
type Rating struct {
	ID      int64
	VisitID int64
	UserID  int64
	Score   int // 1..5
	Comment string
	Status  RatingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsModerated returns true if the rating has left the moderation queue
func (r *Rating) IsModerated() bool {
	return r.Status == RatingApproved || r.Status == RatingRejected
}
