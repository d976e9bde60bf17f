package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	guideRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/guide"
	unavailabilityRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/unavailability"
	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
)

// Service сервис доступности гидов
type Service struct {
	guideRepo          GuideRepository
	visitRepo          VisitRepository
	unavailabilityRepo UnavailabilityRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	guideRepo GuideRepository,
	visitRepo VisitRepository,
	unavailabilityRepo UnavailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		guideRepo:          guideRepo,
		visitRepo:          visitRepo,
		unavailabilityRepo: unavailabilityRepo,
		logger:             logger,
	}
}

// IsGuideAvailable проверяет, свободен ли гид в окне window в день date.
// Гид занят, если день заблокирован записью недоступности (блокировка
// действует на весь день независимо от окна) либо любой неотменённый визит
// пересекается с окном. Визиты встык не считаются пересечением.
func (s *Service) IsGuideAvailable(ctx context.Context, guideID int64, date time.Time, window domain.TimeWindow) (bool, error) {
	// Блокировка на весь день
	_, err := s.unavailabilityRepo.GetByGuideAndDate(ctx, guideID, date)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, unavailabilityRepo.ErrNotFound) {
		return false, fmt.Errorf("%w: IsGuideAvailable - unavailability lookup: %v", ErrInternal, err)
	}

	// Пересечения с существующими визитами
	visits, err := s.visitRepo.GetByFilter(ctx, domain.VisitsFilter{
		GuideID:          &guideID,
		Date:             &date,
		ExcludeCancelled: true,
	})
	if err != nil {
		return false, fmt.Errorf("%w: IsGuideAvailable - visits lookup: %v", ErrInternal, err)
	}

	for _, visit := range visits {
		overlaps, err := window.Overlaps(visit.Window())
		if err != nil {
			return false, fmt.Errorf("%w: IsGuideAvailable - overlap check: %v", ErrInternal, err)
		}
		if overlaps {
			return false, nil
		}
	}

	return true, nil
}

// GetDayAvailability возвращает сводку доступности гида на день
func (s *Service) GetDayAvailability(ctx context.Context, guideID int64, date time.Time) (*models.DayAvailability, error) {
	s.logger.Info("GetDayAvailability: guide=%d, date=%s", guideID, date.Format(domain.DateFormat))

	if _, err := s.guideRepo.GetByID(ctx, guideID); err != nil {
		if errors.Is(err, guideRepo.ErrGuideNotFound) {
			s.logger.Warn("GetDayAvailability: guide id=%d not found", guideID)
			return nil, ErrGuideNotFound
		}
		s.logger.Error("GetDayAvailability: failed to get guide id=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GetDayAvailability - get guide: %v", ErrInternal, err)
	}

	resp := &models.DayAvailability{
		GuideID:   guideID,
		Date:      date.Format(domain.DateFormat),
		Available: true,
	}

	record, err := s.unavailabilityRepo.GetByGuideAndDate(ctx, guideID, date)
	switch {
	case err == nil:
		resp.Available = false
		resp.Reason = record.Reason
	case errors.Is(err, unavailabilityRepo.ErrNotFound):
		// День не заблокирован
	default:
		s.logger.Error("GetDayAvailability: unavailability lookup for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GetDayAvailability - unavailability lookup: %v", ErrInternal, err)
	}

	visits, err := s.visitRepo.GetByFilter(ctx, domain.VisitsFilter{
		GuideID:          &guideID,
		Date:             &date,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetDayAvailability: visits lookup for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GetDayAvailability - visits lookup: %v", ErrInternal, err)
	}
	resp.VisitCount = len(visits)

	return resp, nil
}

// FindReplacements подбирает гидов, свободных в окне window в день date.
// excludeGuideID исключает заменяемого гида. Порядок детерминирован:
// по фамилии, имени, затем ID.
func (s *Service) FindReplacements(ctx context.Context, date time.Time, window domain.TimeWindow, excludeGuideID *int64) (*models.ReplacementListResponse, error) {
	s.logger.Info("FindReplacements: date=%s, window=%s+%dmin, exclude=%v",
		date.Format(domain.DateFormat), window.Start, window.DurationMinutes, excludeGuideID)

	guides, err := s.guideRepo.ListActive(ctx, excludeGuideID)
	if err != nil {
		s.logger.Error("FindReplacements: failed to list guides: %v", err)
		return nil, fmt.Errorf("%w: FindReplacements - list guides: %v", ErrInternal, err)
	}

	result := &models.ReplacementListResponse{
		Guides: make([]models.ReplacementGuide, 0),
	}

	for _, guide := range guides {
		available, err := s.IsGuideAvailable(ctx, guide.ID, date, window)
		if err != nil {
			return nil, err
		}
		if available {
			result.Guides = append(result.Guides, models.FromDomainGuide(guide))
		}
	}

	s.logger.Info("FindReplacements: found %d available guides", len(result.Guides))
	return result, nil
}

// SetUnavailable блокирует день гида. Если на этот день уже есть
// неотменённые визиты, блокировка всё равно ставится - так вела себя
// легаси-система - но в ответе возвращается предупреждение о конфликте.
func (s *Service) SetUnavailable(ctx context.Context, req *models.SetUnavailableRequest) (*models.ScheduleUpdateResponse, error) {
	s.logger.Info("SetUnavailable: guide=%d, date=%s", req.GuideID, req.Date.Format(domain.DateFormat))

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	if _, err := s.guideRepo.GetByID(ctx, req.GuideID); err != nil {
		if errors.Is(err, guideRepo.ErrGuideNotFound) {
			s.logger.Warn("SetUnavailable: guide id=%d not found", req.GuideID)
			return nil, ErrGuideNotFound
		}
		s.logger.Error("SetUnavailable: failed to get guide id=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: SetUnavailable - get guide: %v", ErrInternal, err)
	}

	visits, err := s.visitRepo.GetByFilter(ctx, domain.VisitsFilter{
		GuideID:          &req.GuideID,
		Date:             &req.Date,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("SetUnavailable: visits lookup for guide=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: SetUnavailable - visits lookup: %v", ErrInternal, err)
	}

	if _, err := s.unavailabilityRepo.Create(ctx, &domain.GuideUnavailability{
		GuideID: req.GuideID,
		Date:    req.Date,
		Reason:  req.Reason,
	}); err != nil {
		s.logger.Error("SetUnavailable: failed to create record for guide=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: SetUnavailable - create record: %v", ErrInternal, err)
	}

	resp := &models.ScheduleUpdateResponse{
		GuideID: req.GuideID,
		Date:    req.Date.Format(domain.DateFormat),
		Message: "guide marked unavailable",
	}

	if len(visits) > 0 {
		warning := fmt.Sprintf("guide has %d scheduled visit(s) on this date", len(visits))
		resp.Warning = &warning
		s.logger.Warn("SetUnavailable: guide=%d marked unavailable over %d existing visit(s) on %s",
			req.GuideID, len(visits), req.Date.Format(domain.DateFormat))
	}

	return resp, nil
}

// SetAvailable снимает блокировку дня. Отклоняется с ErrConflictingSchedule,
// если у гида в этот день остаётся неотменённый визит: освободить день
// с действующим обязательством нельзя.
func (s *Service) SetAvailable(ctx context.Context, guideID int64, date time.Time) (*models.ScheduleUpdateResponse, error) {
	s.logger.Info("SetAvailable: guide=%d, date=%s", guideID, date.Format(domain.DateFormat))

	if _, err := s.guideRepo.GetByID(ctx, guideID); err != nil {
		if errors.Is(err, guideRepo.ErrGuideNotFound) {
			s.logger.Warn("SetAvailable: guide id=%d not found", guideID)
			return nil, ErrGuideNotFound
		}
		s.logger.Error("SetAvailable: failed to get guide id=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: SetAvailable - get guide: %v", ErrInternal, err)
	}

	visits, err := s.visitRepo.GetByFilter(ctx, domain.VisitsFilter{
		GuideID:          &guideID,
		Date:             &date,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("SetAvailable: visits lookup for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: SetAvailable - visits lookup: %v", ErrInternal, err)
	}

	if len(visits) > 0 {
		s.logger.Warn("SetAvailable: guide=%d has %d visit(s) on %s, rejecting",
			guideID, len(visits), date.Format(domain.DateFormat))
		return nil, ErrConflictingSchedule
	}

	err = s.unavailabilityRepo.DeleteByGuideAndDate(ctx, guideID, date)
	if err != nil && !errors.Is(err, unavailabilityRepo.ErrNotFound) {
		s.logger.Error("SetAvailable: failed to delete record for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: SetAvailable - delete record: %v", ErrInternal, err)
	}

	return &models.ScheduleUpdateResponse{
		GuideID: guideID,
		Date:    date.Format(domain.DateFormat),
		Message: "guide marked available",
	}, nil
}
