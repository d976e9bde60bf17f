package refunds

import (
	"context"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
)

// RefundRepository интерфейс репозитория возвратов
type RefundRepository interface {
	Create(ctx context.Context, refund *domain.Refund) (*domain.Refund, error)
	GetByID(ctx context.Context, id int64) (*domain.Refund, error)
	HasPendingByVisit(ctx context.Context, visitID int64) (bool, error)
	UpdateDecision(ctx context.Context, id int64, status domain.RefundStatus, rejectionReason *string, processedBy int64, processedAt time.Time) error
	ListPending(ctx context.Context) ([]*domain.Refund, error)
	ListByVisit(ctx context.Context, visitID int64) ([]*domain.Refund, error)
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
}

// StaffServiceClient клиент сервиса сотрудников для проверки прав
type StaffServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*staffservice.User, error)
}

// RefundNotifier клиент сервиса уведомлений о решениях по возвратам
type RefundNotifier interface {
	NotifyRefundDecision(ctx context.Context, event notifier.RefundDecisionEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
