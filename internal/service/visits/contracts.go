package visits

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	GetByFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VisitStatus, cancellationReason *string) error
	Close(ctx context.Context, id int64, generalComment *string) error
}

// StaffServiceClient клиент сервиса сотрудников для проверки прав
type StaffServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*staffservice.User, error)
}

// ScheduleNotifier клиент сервиса уведомлений об изменениях расписания
type ScheduleNotifier interface {
	NotifyScheduleChange(ctx context.Context, event notifier.ScheduleChangeEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
