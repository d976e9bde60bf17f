package availability

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// GuideRepository интерфейс репозитория гидов
type GuideRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guide, error)
	ListActive(ctx context.Context, excludeID *int64) ([]*domain.Guide, error)
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
}

// UnavailabilityRepository интерфейс репозитория недоступности гидов
type UnavailabilityRepository interface {
	GetByGuideAndDate(ctx context.Context, guideID int64, date time.Time) (*domain.GuideUnavailability, error)
	Create(ctx context.Context, record *domain.GuideUnavailability) (*domain.GuideUnavailability, error)
	DeleteByGuideAndDate(ctx context.Context, guideID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
