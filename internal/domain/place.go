package domain

import "time"

// Place represents a destination that visits are scheduled to
type Place struct {
	ID          int64
	Name        string
	Country     string
	CategoryID  *int64
	Description *string
	Photo       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
