package get_guide_visits

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/visits/models"
)

type VisitService interface {
	List(ctx context.Context, req *models.ListVisitsRequest) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
