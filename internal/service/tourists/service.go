package tourists

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	touristRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/tourist"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/service/tourists/models"
)

// Service сервис для работы с туристами визита
type Service struct {
	touristRepo TouristRepository
	visitRepo   VisitRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса туристов
func NewService(touristRepo TouristRepository, visitRepo VisitRepository, logger Logger) *Service {
	return &Service{
		touristRepo: touristRepo,
		visitRepo:   visitRepo,
		logger:      logger,
	}
}

// ListByVisit возвращает туристов визита
func (s *Service) ListByVisit(ctx context.Context, visitID int64) (*models.TouristListResponse, error) {
	s.logger.Info("ListByVisit: fetching tourists for visit=%d", visitID)

	if _, err := s.visitRepo.GetByID(ctx, visitID); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("ListByVisit: visit id=%d not found", visitID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("ListByVisit: repository error for visit id=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: ListByVisit - repository error: %v", ErrInternal, err)
	}

	tourists, err := s.touristRepo.ListByVisit(ctx, visitID)
	if err != nil {
		s.logger.Error("ListByVisit: failed to list tourists for visit=%d: %v", visitID, err)
		return nil, fmt.Errorf("%w: ListByVisit - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTouristList(tourists), nil
}

// MarkPresence отмечает присутствие или отсутствие туриста на визите
func (s *Service) MarkPresence(ctx context.Context, touristID int64, req *models.MarkPresenceRequest) error {
	s.logger.Info("MarkPresence: tourist=%d is_present=%t", touristID, req.IsPresent)

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	err := s.touristRepo.UpdatePresence(ctx, touristID, req.IsPresent, req.Comment)
	if err != nil {
		if errors.Is(err, touristRepo.ErrTouristNotFound) {
			s.logger.Warn("MarkPresence: tourist id=%d not found", touristID)
			return ErrTouristNotFound
		}
		s.logger.Error("MarkPresence: failed to update tourist id=%d: %v", touristID, err)
		return fmt.Errorf("%w: MarkPresence - repository error: %v", ErrInternal, err)
	}

	return nil
}
