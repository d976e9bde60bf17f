package update_visit_status

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/visits/models"
)

type VisitService interface {
	UpdateStatus(ctx context.Context, visitID int64, req *models.UpdateStatusRequest) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
