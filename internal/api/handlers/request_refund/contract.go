package request_refund

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

type RefundService interface {
	RequestRefund(ctx context.Context, req *models.RequestRefundRequest) (*models.RefundResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
