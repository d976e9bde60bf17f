package list_tourists

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/tourists/models"
)

type TouristService interface {
	ListByVisit(ctx context.Context, visitID int64) (*models.TouristListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
