package find_replacements

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

type AvailabilityService interface {
	FindReplacements(ctx context.Context, date time.Time, window domain.TimeWindow, excludeGuideID *int64) (*models.ReplacementListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
