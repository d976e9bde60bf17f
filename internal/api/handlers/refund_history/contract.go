package refund_history

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

type RefundService interface {
	History(ctx context.Context, visitID int64) (*models.RefundListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
