package process_refund

import (
	"time"

	refundModels "github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
	approveRefund "github.com/travelparadise/TP-VisitService/internal/usecase/approve_refund"
)

// Решения по возврату
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// ProcessRefundRequest HTTP request model.
// reason обязателен только для decision=reject.
type ProcessRefundRequest struct {
	Decision    string `json:"decision"` // approve | reject
	Reason      string `json:"reason,omitempty"`
	ProcessedBy int64  `json:"processedBy"`
}

// ToRejectRequest конвертирует HTTP запрос в модель сервиса отклонения
func (r *ProcessRefundRequest) ToRejectRequest() *refundModels.RejectRefundRequest {
	return &refundModels.RejectRefundRequest{
		Reason:      r.Reason,
		ProcessedBy: r.ProcessedBy,
	}
}

// ApprovedRefundResponse HTTP response для одобренного возврата:
// включает статус визита после каскадной отмены
type ApprovedRefundResponse struct {
	RefundID    int64   `json:"refundId"`
	VisitID     int64   `json:"visitId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	VisitStatus string  `json:"visitStatus"`
	ProcessedBy int64   `json:"processedBy"`
	ProcessedAt string  `json:"processedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveRefund.Response) *ApprovedRefundResponse {
	return &ApprovedRefundResponse{
		RefundID:    resp.RefundID,
		VisitID:     resp.VisitID,
		Amount:      resp.Amount,
		Status:      resp.Status,
		VisitStatus: resp.VisitStatus,
		ProcessedBy: resp.ProcessedBy,
		ProcessedAt: resp.ProcessedAt.Format(time.RFC3339),
	}
}
