package update_guide_schedule

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

type AvailabilityService interface {
	SetUnavailable(ctx context.Context, req *models.SetUnavailableRequest) (*models.ScheduleUpdateResponse, error)
	SetAvailable(ctx context.Context, guideID int64, date time.Time) (*models.ScheduleUpdateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
