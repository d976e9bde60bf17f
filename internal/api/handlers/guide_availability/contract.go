package guide_availability

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, guideID int64, date time.Time) (*models.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
