package add_tourist

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
}

// TouristRepository интерфейс репозитория туристов
type TouristRepository interface {
	Create(ctx context.Context, tourist *domain.Tourist) (*domain.Tourist, error)
	CountByVisit(ctx context.Context, visitID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
