package approve_refund

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
)

// RefundRepository интерфейс репозитория возвратов
type RefundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Refund, error)
	UpdateDecision(ctx context.Context, id int64, status domain.RefundStatus, rejectionReason *string, processedBy int64, processedAt time.Time) error
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VisitStatus, cancellationReason *string) error
}

// StaffServiceClient клиент сервиса сотрудников для проверки прав
type StaffServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*staffservice.User, error)
}

// RefundNotifier клиент сервиса уведомлений о решениях по возвратам
type RefundNotifier interface {
	NotifyRefundDecision(ctx context.Context, event notifier.RefundDecisionEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
