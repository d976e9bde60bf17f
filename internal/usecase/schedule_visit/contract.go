package schedule_visit

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	GetByFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
}

// GuideRepository интерфейс репозитория гидов
type GuideRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guide, error)
}

// PlaceRepository интерфейс репозитория мест
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// UnavailabilityRepository интерфейс репозитория недоступности гидов
type UnavailabilityRepository interface {
	GetByGuideAndDate(ctx context.Context, guideID int64, date time.Time) (*domain.GuideUnavailability, error)
}

// ScheduleNotifier клиент сервиса уведомлений об изменениях расписания
type ScheduleNotifier interface {
	NotifyScheduleChange(ctx context.Context, event notifier.ScheduleChangeEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
