package models

import (
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// Request модели

// RequestRefundRequest запрос на возврат средств по визиту
type RequestRefundRequest struct {
	VisitID     int64   `json:"visitId"`
	BasePrice   float64 `json:"basePrice"` // Цена визита; визит её не хранит, платёжный контур передаёт явно
	Reason      string  `json:"reason"`
	RequestedBy int64   `json:"requestedBy"`
}

// RejectRefundRequest запрос на отклонение возврата
type RejectRefundRequest struct {
	Reason      string `json:"reason"`
	ProcessedBy int64  `json:"processedBy"`
}

// Response модели

// RefundResponse ответ с данными возврата
type RefundResponse struct {
	ID              int64   `json:"id"`
	VisitID         int64   `json:"visitId"`
	Amount          float64 `json:"amount"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	RequestedBy     int64   `json:"requestedBy"`
	RequestedAt     string  `json:"requestedAt"`
	ProcessedBy     *int64  `json:"processedBy,omitempty"`
	ProcessedAt     *string `json:"processedAt,omitempty"`
}

// FromDomainRefund конвертирует domain модель в response
func FromDomainRefund(r *domain.Refund) *RefundResponse {
	resp := &RefundResponse{
		ID:              r.ID,
		VisitID:         r.VisitID,
		Amount:          r.Amount,
		Reason:          r.Reason,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		RequestedBy:     r.RequestedBy,
		RequestedAt:     r.RequestedAt.Format(time.RFC3339),
		ProcessedBy:     r.ProcessedBy,
	}

	if r.ProcessedAt != nil {
		processedAt := r.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processedAt
	}

	return resp
}

// RefundListResponse ответ со списком возвратов
type RefundListResponse struct {
	Refunds []*RefundResponse `json:"refunds"`
}

// FromDomainRefundList конвертирует список domain моделей в response
func FromDomainRefundList(refunds []*domain.Refund) *RefundListResponse {
	result := &RefundListResponse{
		Refunds: make([]*RefundResponse, 0, len(refunds)),
	}
	for _, r := range refunds {
		result.Refunds = append(result.Refunds, FromDomainRefund(r))
	}
	return result
}
