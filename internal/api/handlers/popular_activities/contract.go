package popular_activities

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/service/statistics/models"
)

type StatisticsService interface {
	PopularActivities(ctx context.Context, start, end time.Time) (*models.PopularActivitiesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
