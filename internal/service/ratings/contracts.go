package ratings

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
)

// RatingRepository интерфейс репозитория оценок
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	GetByID(ctx context.Context, id int64) (*domain.Rating, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RatingStatus) error
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
}

// StaffServiceClient клиент сервиса сотрудников для проверки прав
type StaffServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*staffservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
