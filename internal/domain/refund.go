package domain

import "time"

// RefundStatus represents the processing status of a refund request
type RefundStatus string

const (
	RefundPending  RefundStatus = "pending"
	RefundApproved RefundStatus = "approved"
	RefundRejected RefundStatus = "rejected"
)

// Refund represents a monetary reimbursement request tied to a visit
type Refund struct {
	ID              int64
	VisitID         int64
	Amount          float64
	Reason          string
	Status          RefundStatus
	RejectionReason *string

	RequestedBy int64
	RequestedAt time.Time
	ProcessedBy *int64
	ProcessedAt *time.Time
}

// IsProcessed returns true if the refund has reached a terminal status
func (r *Refund) IsProcessed() bool {
	return r.Status == RefundApproved || r.Status == RefundRejected
}

// CalculateRefundAmount применяет временную политику возврата.
// daysUntilVisit - календарная разница дней (усечение к нулю):
//   - больше 7 дней до визита  → 100% от basePrice
//   - от 3 до 7 дней включительно → 50%
//   - меньше 3 дней → 0
func CalculateRefundAmount(visitDate time.Time, basePrice float64, now time.Time) float64 {
	days := daysUntil(visitDate, now)

	if days > FullRefundAboveDays {
		return basePrice
	}
	if days >= HalfRefundMinDays {
		return basePrice * HalfRefundRate
	}
	return 0
}

// daysUntil возвращает календарную разницу дней между date и now.
// Время суток отбрасывается у обеих дат, поэтому частичные дни
// усекаются к нулю.
func daysUntil(date, now time.Time) int {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(dateOnly.Sub(nowOnly).Hours() / 24)
}
