package tourists

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// TouristRepository интерфейс репозитория туристов
type TouristRepository interface {
	ListByVisit(ctx context.Context, visitID int64) ([]*domain.Tourist, error)
	UpdatePresence(ctx context.Context, id int64, isPresent bool, comment *string) error
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
