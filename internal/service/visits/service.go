package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/service/visits/models"
)

// Service сервис для работы с визитами
type Service struct {
	visitRepo   VisitRepository
	staffClient StaffServiceClient
	notifier    ScheduleNotifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(
	visitRepo VisitRepository,
	staffClient StaffServiceClient,
	notifier ScheduleNotifier,
	logger Logger,
) *Service {
	return &Service{
		visitRepo:   visitRepo,
		staffClient: staffClient,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает визит по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VisitResponse, error) {
	s.logger.Info("GetByID: fetching visit id=%d", id)

	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("GetByID: visit id=%d not found", id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("GetByID: repository error for visit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisit(visit), nil
}

// List получает визиты гида, опционально фильтруя по дню и статусу
func (s *Service) List(ctx context.Context, req *models.ListVisitsRequest) (*models.VisitListResponse, error) {
	s.logger.Info("List: fetching visits for guide=%d, date=%v, status=%v", req.GuideID, req.Date, req.Status)

	filter := domain.VisitsFilter{
		GuideID: &req.GuideID,
		Date:    req.Date,
	}

	if req.Status != nil {
		status, err := models.ToDomainVisitStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for guide=%d", *req.Status, req.GuideID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	visits, err := s.visitRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for guide=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d visits for guide=%d", len(visits), req.GuideID)
	return models.FromDomainVisitList(visits), nil
}

// UpdateStatus переводит визит в новый статус.
// Доступно менеджеру или гиду, ведущему визит.
// Допустимость перехода определяется таблицей переходов домена:
// scheduled → in_progress/cancelled, in_progress → completed/cancelled,
// терминальные статусы не покидаются.
func (s *Service) UpdateStatus(ctx context.Context, visitID int64, req *models.UpdateStatusRequest) (*models.VisitResponse, error) {
	s.logger.Info("UpdateStatus: updating visit id=%d to status=%s by user=%d", visitID, req.Status, req.UserID)

	visit, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("UpdateStatus: visit id=%d not found", visitID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("UpdateStatus: repository error for visit id=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkModifyAccess(ctx, visit, req.UserID); err != nil {
		return nil, err
	}

	newStatus, err := models.ToDomainVisitStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for visit id=%d", req.Status, visitID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !visit.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for visit id=%d", visit.Status, newStatus, visitID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, visit.Status, newStatus)
	}

	// Причина отмены сохраняется только при переходе в cancelled
	var cancellationReason *string
	if newStatus == domain.VisitCancelled {
		if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxReasonLength {
			return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
		}
		cancellationReason = req.CancellationReason
	}

	if err := s.visitRepo.UpdateStatus(ctx, visitID, newStatus, cancellationReason); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return nil, ErrVisitNotFound
		}
		s.logger.Error("UpdateStatus: repository error for visit id=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	visit.Status = newStatus
	if cancellationReason != nil {
		visit.CancellationReason = cancellationReason
	}

	// Уведомление fire-and-forget: сбой нотификатора не ломает операцию
	s.notifyStatusChange(ctx, visit, newStatus)

	s.logger.Info("UpdateStatus: visit id=%d moved to status=%s", visitID, newStatus)
	return models.FromDomainVisit(visit), nil
}

// Close завершает визит и сохраняет итоговый комментарий одной записью
func (s *Service) Close(ctx context.Context, visitID int64, req *models.CloseVisitRequest) (*models.VisitResponse, error) {
	s.logger.Info("Close: closing visit id=%d by user=%d", visitID, req.UserID)

	if req.GeneralComment != nil && len(*req.GeneralComment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: general comment is too long", ErrInvalidInput)
	}

	visit, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Close: visit id=%d not found", visitID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("Close: repository error for visit id=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	if err := s.checkModifyAccess(ctx, visit, req.UserID); err != nil {
		return nil, err
	}

	if !visit.Status.CanTransitionTo(domain.VisitCompleted) {
		s.logger.Warn("Close: illegal transition %s -> %s for visit id=%d", visit.Status, domain.VisitCompleted, visitID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, visit.Status, domain.VisitCompleted)
	}

	if err := s.visitRepo.Close(ctx, visitID, req.GeneralComment); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return nil, ErrVisitNotFound
		}
		s.logger.Error("Close: repository error for visit id=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	visit.Status = domain.VisitCompleted
	visit.GeneralComment = req.GeneralComment

	s.logger.Info("Close: visit id=%d completed", visitID)
	return models.FromDomainVisit(visit), nil
}

// checkModifyAccess проверяет права на изменение визита:
// менеджер или гид, ведущий этот визит
func (s *Service) checkModifyAccess(ctx context.Context, visit *domain.Visit, userID int64) error {
	user, err := s.staffClient.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("checkModifyAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkModifyAccess - staff service error: %v", ErrInternal, err)
	}

	if !user.CanModifyVisit(visit.GuideID) {
		s.logger.Warn("checkModifyAccess: access denied for user=%d to visit id=%d", userID, visit.ID)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) notifyStatusChange(ctx context.Context, visit *domain.Visit, newStatus domain.VisitStatus) {
	kind := notifier.KindStatusChanged
	if newStatus == domain.VisitCancelled {
		kind = notifier.KindCancelled
	}

	event := notifier.ScheduleChangeEvent{
		VisitID:   visit.ID,
		GuideID:   visit.GuideID,
		VisitDate: visit.Date.Format(domain.DateFormat),
		StartTime: visit.StartTime.String(),
		Kind:      kind,
	}

	if err := s.notifier.NotifyScheduleChange(ctx, event); err != nil {
		s.logger.Warn("notifyStatusChange: notifier failed for visit id=%d: %v", visit.ID, err)
	}
}
