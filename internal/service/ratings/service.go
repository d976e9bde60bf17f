package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	ratingRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/rating"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

// Service сервис оценок визитов
type Service struct {
	ratingRepo  RatingRepository
	visitRepo   VisitRepository
	staffClient StaffServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса оценок
func NewService(
	ratingRepo RatingRepository,
	visitRepo VisitRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		ratingRepo:  ratingRepo,
		visitRepo:   visitRepo,
		staffClient: staffClient,
		logger:      logger,
	}
}

// Create создает оценку визита со статусом pending.
// По одной оценке на пару (визит, пользователь); дубликат отклоняется.
func (s *Service) Create(ctx context.Context, req *models.CreateRatingRequest) (*models.RatingResponse, error) {
	s.logger.Info("Create: rating for visit=%d by user=%d, score=%d", req.VisitID, req.UserID, req.Score)

	if req.Score < domain.MinRatingScore || req.Score > domain.MaxRatingScore {
		s.logger.Warn("Create: invalid score=%d for visit=%d", req.Score, req.VisitID)
		return nil, fmt.Errorf("%w: score must be %d..%d", ErrInvalidInput, domain.MinRatingScore, domain.MaxRatingScore)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	if _, err := s.visitRepo.GetByID(ctx, req.VisitID); err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Create: visit id=%d not found", req.VisitID)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("Create: visit lookup error for id=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: Create - visit lookup: %v", ErrInternal, err)
	}

	rating, err := s.ratingRepo.Create(ctx, &domain.Rating{
		VisitID: req.VisitID,
		UserID:  req.UserID,
		Score:   req.Score,
		Comment: req.Comment,
		Status:  domain.RatingPending,
	})
	if err != nil {
		if errors.Is(err, ratingRepo.ErrDuplicateRating) {
			s.logger.Warn("Create: duplicate rating for visit=%d by user=%d", req.VisitID, req.UserID)
			return nil, ErrDuplicateRating
		}
		s.logger.Error("Create: failed to create rating for visit=%d: %v", req.VisitID, err)
		return nil, fmt.Errorf("%w: Create - create rating: %v", ErrInternal, err)
	}

	s.logger.Info("Create: rating id=%d created for visit=%d", rating.ID, req.VisitID)
	return models.FromDomainRating(rating), nil
}

// Moderate переводит оценку из очереди модерации.
// Доступно только менеджерам; approved и rejected - терминальные статусы,
// flagged можно модерировать повторно.
func (s *Service) Moderate(ctx context.Context, ratingID int64, req *models.ModerateRatingRequest) (*models.RatingResponse, error) {
	s.logger.Info("Moderate: rating id=%d to status=%s by user=%d", ratingID, req.Status, req.ModeratorID)

	newStatus, err := toModerationStatus(req.Status)
	if err != nil {
		s.logger.Warn("Moderate: invalid status=%s for rating id=%d", req.Status, ratingID)
		return nil, fmt.Errorf("%w: invalid moderation status", ErrInvalidInput)
	}

	if err := s.checkModerateAccess(ctx, req.ModeratorID); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, ratingRepo.ErrRatingNotFound) {
			s.logger.Warn("Moderate: rating id=%d not found", ratingID)
			return nil, ErrRatingNotFound
		}
		s.logger.Error("Moderate: repository error for rating id=%d: %v", ratingID, err)
		return nil, fmt.Errorf("%w: Moderate - repository error: %v", ErrInternal, err)
	}

	if rating.IsModerated() {
		s.logger.Warn("Moderate: rating id=%d already moderated with status=%s", ratingID, rating.Status)
		return nil, ErrAlreadyModerated
	}

	if err := s.ratingRepo.UpdateStatus(ctx, ratingID, newStatus); err != nil {
		s.logger.Error("Moderate: failed to update rating id=%d: %v", ratingID, err)
		return nil, fmt.Errorf("%w: Moderate - update status: %v", ErrInternal, err)
	}

	rating.Status = newStatus
	s.logger.Info("Moderate: rating id=%d moved to status=%s", ratingID, newStatus)
	return models.FromDomainRating(rating), nil
}

func toModerationStatus(status string) (domain.RatingStatus, error) {
	switch domain.RatingStatus(status) {
	case domain.RatingApproved, domain.RatingRejected, domain.RatingFlagged:
		return domain.RatingStatus(status), nil
	default:
		return "", fmt.Errorf("unknown moderation status %q", status)
	}
}

// checkModerateAccess проверяет права на модерацию (admin или manager)
func (s *Service) checkModerateAccess(ctx context.Context, userID int64) error {
	user, err := s.staffClient.GetUser(ctx, userID)
	if err != nil {
		s.logger.Error("checkModerateAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkModerateAccess - staff service error: %v", ErrInternal, err)
	}

	if !user.CanModerateRatings() {
		s.logger.Warn("checkModerateAccess: access denied for user=%d", userID)
		return ErrAccessDenied
	}

	return nil
}
