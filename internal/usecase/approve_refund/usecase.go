package approve_refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	refundRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/refund"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
)

// UseCase use case одобрения возврата средств
type UseCase struct {
	refundRepo   RefundRepository
	visitRepo    VisitRepository
	staffClient  StaffServiceClient
	notifier     RefundNotifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	refundRepo RefundRepository,
	visitRepo VisitRepository,
	staffClient StaffServiceClient,
	notifier RefundNotifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		refundRepo:   refundRepo,
		visitRepo:    visitRepo,
		staffClient:  staffClient,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case одобрения возврата.
// Решение по возврату и каскадная отмена визита выполняются в одной
// транзакции. Отмена безусловная: возврат по завершённому визиту
// тоже отменяет визит задним числом, минуя таблицу переходов,
// причина возврата записывается как причина отмены.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveRefund: refund=%d by user=%d", req.RefundID, req.ProcessedBy)

	// 1. Валидация входных данных
	if req.RefundID <= 0 {
		return nil, fmt.Errorf("%w: refundID must be positive", ErrInvalidInput)
	}
	if req.ProcessedBy <= 0 {
		return nil, fmt.Errorf("%w: processedBy must be positive", ErrInvalidInput)
	}

	// 2. Проверяем права: только admin и manager
	user, err := uc.staffClient.GetUser(ctx, req.ProcessedBy)
	if err != nil {
		uc.logger.Error("ApproveRefund: failed to get user=%d: %v", req.ProcessedBy, err)
		return nil, fmt.Errorf("%w: staff service error: %v", ErrInternal, err)
	}
	if !user.CanProcessRefunds() {
		uc.logger.Warn("ApproveRefund: access denied for user=%d", req.ProcessedBy)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	var refund *domain.Refund
	var visitStatus domain.VisitStatus

	// 3. Решение и каскадная отмена в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем возврат с блокировкой (FOR UPDATE)
		r, err := uc.refundRepo.GetByID(txCtx, req.RefundID)
		if err != nil {
			if errors.Is(err, refundRepo.ErrRefundNotFound) {
				uc.logger.Warn("ApproveRefund: refund id=%d not found", req.RefundID)
				return ErrRefundNotFound
			}
			uc.logger.Error("ApproveRefund: failed to get refund id=%d: %v", req.RefundID, err)
			return fmt.Errorf("%w: failed to get refund: %v", ErrInternal, err)
		}

		if r.IsProcessed() {
			uc.logger.Warn("ApproveRefund: refund id=%d already processed with status=%s", req.RefundID, r.Status)
			return ErrAlreadyProcessed
		}

		// 3.2. Одобряем возврат
		if err := uc.refundRepo.UpdateDecision(txCtx, r.ID, domain.RefundApproved, nil, req.ProcessedBy, now); err != nil {
			uc.logger.Error("ApproveRefund: failed to update refund id=%d: %v", r.ID, err)
			return fmt.Errorf("%w: failed to update refund: %v", ErrInternal, err)
		}

		// 3.3. Каскадная отмена визита
		visit, err := uc.visitRepo.GetByID(txCtx, r.VisitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				uc.logger.Error("ApproveRefund: visit id=%d for refund id=%d not found", r.VisitID, r.ID)
				return fmt.Errorf("%w: linked visit not found", ErrInternal)
			}
			uc.logger.Error("ApproveRefund: failed to get visit id=%d: %v", r.VisitID, err)
			return fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
		}

		visitStatus = visit.Status
		if visit.Status != domain.VisitCancelled {
			reason := fmt.Sprintf("refund approved: %s", r.Reason)
			if err := uc.visitRepo.UpdateStatus(txCtx, visit.ID, domain.VisitCancelled, &reason); err != nil {
				uc.logger.Error("ApproveRefund: failed to cancel visit id=%d: %v", visit.ID, err)
				return fmt.Errorf("%w: failed to cancel visit: %v", ErrInternal, err)
			}
			visitStatus = domain.VisitCancelled
		}

		refund = r
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveRefund: refund id=%d approved, visit id=%d cancelled", refund.ID, refund.VisitID)

	// 4. Уведомление после коммита, fire-and-forget
	if err := uc.notifier.NotifyRefundDecision(ctx, notifier.RefundDecisionEvent{
		RefundID: refund.ID,
		VisitID:  refund.VisitID,
		Status:   string(domain.RefundApproved),
		Amount:   refund.Amount,
	}); err != nil {
		uc.logger.Warn("ApproveRefund: notifier failed for refund id=%d: %v", refund.ID, err)
	}

	return &Response{
		RefundID:    refund.ID,
		VisitID:     refund.VisitID,
		Amount:      refund.Amount,
		Status:      string(domain.RefundApproved),
		VisitStatus: string(visitStatus),
		ProcessedBy: req.ProcessedBy,
		ProcessedAt: now,
	}, nil
}
