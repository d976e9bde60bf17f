package process_refund

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
	approveRefund "github.com/travelparadise/TP-VisitService/internal/usecase/approve_refund"
)

type ApproveRefundUseCase interface {
	Execute(ctx context.Context, req *approveRefund.Request) (*approveRefund.Response, error)
}

type RefundService interface {
	RejectRefund(ctx context.Context, refundID int64, req *models.RejectRefundRequest) (*models.RefundResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
