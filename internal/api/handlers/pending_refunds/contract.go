package pending_refunds

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

type RefundService interface {
	ListPending(ctx context.Context) (*models.RefundListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
