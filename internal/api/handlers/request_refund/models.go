package request_refund

import (
	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

// RequestRefundRequest HTTP request model.
// Цена визита приходит от платёжного контура, сам визит её не хранит.
type RequestRefundRequest struct {
	BasePrice   float64 `json:"basePrice"`
	Reason      string  `json:"reason"`
	RequestedBy int64   `json:"requestedBy"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RequestRefundRequest) ToServiceRequest(visitID int64) *models.RequestRefundRequest {
	return &models.RequestRefundRequest{
		VisitID:     visitID,
		BasePrice:   r.BasePrice,
		Reason:      r.Reason,
		RequestedBy: r.RequestedBy,
	}
}
