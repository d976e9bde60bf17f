package statistics

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
)

// VisitRepository интерфейс репозитория визитов для агрегаций
type VisitRepository interface {
	CountByPeriod(ctx context.Context, filter domain.VisitsFilter) (int, error)
	GetGuideBreakdown(ctx context.Context, filter domain.VisitsFilter) ([]visitRepo.GuideBreakdown, error)
	GetPopularLocations(ctx context.Context, filter domain.VisitsFilter) ([]visitRepo.LocationCount, error)
	CountDistinctGuides(ctx context.Context, filter domain.VisitsFilter) (int, error)
}

// TouristRepository интерфейс репозитория туристов для агрегаций
type TouristRepository interface {
	GetPresenceStats(ctx context.Context, guideID *int64, startDate, endDate *time.Time) (domain.PresenceStats, error)
}

// RatingRepository интерфейс репозитория оценок для агрегаций
type RatingRepository interface {
	GetAverageScoreForGuide(ctx context.Context, guideID int64, startDate, endDate *time.Time) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
