package refunds

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	refundRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/refund"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

// Service сервис для работы с возвратами средств
type Service struct {
	refundRepo   RefundRepository
	visitRepo    VisitRepository
	staffClient  StaffServiceClient
	notifier     RefundNotifier
	logger       Logger
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса возвратов
func NewService(
	refundRepo RefundRepository,
	visitRepo VisitRepository,
	staffClient StaffServiceClient,
	notifier RefundNotifier,
	logger Logger,
) *Service {
	return &Service{
		refundRepo:   refundRepo,
		visitRepo:    visitRepo,
		staffClient:  staffClient,
		notifier:     notifier,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// RequestRefund создает запрос на возврат по визиту.
// Сумма считается по временной политике от даты визита; по одному визиту
// может существовать только один необработанный запрос.
func (s *Service) RequestRefund(ctx context.Context, req *models.RequestRefundRequest) (*models.RefundResponse, error) {
	s.logger.Info("RequestRefund: visit=%d, basePrice=%.2f, user=%d", req.VisitID, req.BasePrice, req.RequestedBy)

	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	visit, err := s.visitRepo.GetByID(ctx, req.VisitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("RequestRefund: visit id=%d not found", req.VisitID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("RequestRefund: repository error for visit id=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: RequestRefund - visit lookup: %v", ErrInternal, err)
	}

	hasPending, err := s.refundRepo.HasPendingByVisit(ctx, req.VisitID)
	if err != nil {
		s.logger.Error("RequestRefund: pending check for visit id=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: RequestRefund - pending check: %v", ErrInternal, err)
	}
	if hasPending {
		s.logger.Warn("RequestRefund: visit id=%d already has a pending refund", req.VisitID)
		return nil, ErrPendingRefundExists
	}

	now := s.timeProvider.Now()
	amount := domain.CalculateRefundAmount(visit.Date, req.BasePrice, now)

	refund, err := s.refundRepo.Create(ctx, &domain.Refund{
		VisitID:     req.VisitID,
		Amount:      amount,
		Reason:      req.Reason,
		Status:      domain.RefundPending,
		RequestedBy: req.RequestedBy,
		RequestedAt: now,
	})
	if err != nil {
		s.logger.Error("RequestRefund: failed to create refund for visit id=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: RequestRefund - create refund: %v", ErrInternal, err)
	}

	s.logger.Info("RequestRefund: refund id=%d created for visit=%d, amount=%.2f", refund.ID, req.VisitID, amount)
	return models.FromDomainRefund(refund), nil
}

// RejectRefund отклоняет необработанный возврат.
// Доступно только менеджерам.
func (s *Service) RejectRefund(ctx context.Context, refundID int64, req *models.RejectRefundRequest) (*models.RefundResponse, error) {
	s.logger.Info("RejectRefund: refund id=%d by user=%d", refundID, req.ProcessedBy)

	if req.Reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}

	if err := s.checkProcessAccess(ctx, req.ProcessedBy); err != nil {
		return nil, err
	}

	refund, err := s.refundRepo.GetByID(ctx, refundID)
	if err != nil {
		if errors.Is(err, refundRepo.ErrRefundNotFound) {
			s.logger.Warn("RejectRefund: refund id=%d not found", refundID)
			return nil, ErrRefundNotFound
		}
		s.logger.Error("RejectRefund: repository error for refund id=%d: %v", refundID, err)
		return nil, fmt.Errorf("%w: RejectRefund - repository error: %v", ErrInternal, err)
	}

	if refund.IsProcessed() {
		s.logger.Warn("RejectRefund: refund id=%d already processed with status=%s", refundID, refund.Status)
		return nil, ErrAlreadyProcessed
	}

	now := s.timeProvider.Now()
	if err := s.refundRepo.UpdateDecision(ctx, refundID, domain.RefundRejected, &req.Reason, req.ProcessedBy, now); err != nil {
		s.logger.Error("RejectRefund: failed to update refund id=%d: %v", refundID, err)
		return nil, fmt.Errorf("%w: RejectRefund - update decision: %v", ErrInternal, err)
	}

	refund.Status = domain.RefundRejected
	refund.RejectionReason = &req.Reason
	refund.ProcessedBy = &req.ProcessedBy
	refund.ProcessedAt = &now

	// Уведомление fire-and-forget
	if err := s.notifier.NotifyRefundDecision(ctx, notifier.RefundDecisionEvent{
		RefundID: refund.ID,
		VisitID:  refund.VisitID,
		Status:   string(domain.RefundRejected),
		Amount:   refund.Amount,
	}); err != nil {
		s.logger.Warn("RejectRefund: notifier failed for refund id=%d: %v", refundID, err)
	}

	s.logger.Info("RejectRefund: refund id=%d rejected", refundID)
	return models.FromDomainRefund(refund), nil
}

// ListPending возвращает все необработанные возвраты в порядке поступления
func (s *Service) ListPending(ctx context.Context) (*models.RefundListResponse, error) {
	s.logger.Info("ListPending: fetching pending refunds")

	refunds, err := s.refundRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: fetched %d pending refunds", len(refunds))
	return models.FromDomainRefundList(refunds), nil
}

// History возвращает историю возвратов по визиту, новые первыми
func (s *Service) History(ctx context.Context, visitID int64) (*models.RefundListResponse, error) {
	s.logger.Info("History: fetching refunds for visit=%d", visitID)

	refunds, err := s.refundRepo.ListByVisit(ctx, visitID)
	if err != nil {
		s.logger.Error("History: repository error for visit=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRefundList(refunds), nil
}

// checkProcessAccess проверяет права на обработку возвратов (admin или manager)
func (s *Service) checkProcessAccess(ctx context.Context, userID int64) error {
	user, err := s.staffClient.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("checkProcessAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkProcessAccess - staff service error: %v", ErrInternal, err)
	}

	if !user.CanProcessRefunds() {
		s.logger.Warn("checkProcessAccess: access denied for user=%d", userID)
		return ErrAccessDenied
	}

	return nil
}
