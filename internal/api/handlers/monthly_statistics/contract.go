package monthly_statistics

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/statistics/models"
)

type StatisticsService interface {
	MonthlyOverview(ctx context.Context, year, month int) (*models.MonthlyOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
