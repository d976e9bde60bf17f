package domain

import "time"

// GuideStatus represents the employment status of a guide
type GuideStatus string

const (
	GuideActive   GuideStatus = "active"
	GuideInactive GuideStatus = "inactive"
	GuideOnLeave  GuideStatus = "on_leave"
)

// Guide represents a tour guide
type Guide struct {
	ID        int64
	FirstName string
	LastName  string
	Country   string
	Status    GuideStatus
	Photo     *string
	UserID    *int64 // Учётная запись гида в StaffService (если привязана)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the guide can be assigned to visits
func (g *Guide) IsActive() bool {
	return g.Status == GuideActive
}

// FullName returns "FirstName LastName"
func (g *Guide) FullName() string {
	return g.FirstName + " " + g.LastName
}

// GuideUnavailability явная блокировка гида на календарный день,
// независимая от визитов. Блокирует весь день целиком.
type GuideUnavailability struct {
	ID      int64
	GuideID int64
	Date    time.Time
	Reason  *string

	CreatedAt time.Time
}
