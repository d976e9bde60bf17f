package guide_performance

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/service/statistics/models"
)

type StatisticsService interface {
	GuidePerformance(ctx context.Context, guideID int64, start, end time.Time) (*models.GuidePerformanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
