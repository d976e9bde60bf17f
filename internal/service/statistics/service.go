package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/internal/service/statistics/models"
)

// Service сервис статистики. Только чтение; ничего не изменяет.
type Service struct {
	visitRepo   VisitRepository
	touristRepo TouristRepository
	ratingRepo  RatingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	visitRepo VisitRepository,
	touristRepo TouristRepository,
	ratingRepo RatingRepository,
	logger Logger,
) *Service {
	return &Service{
		visitRepo:   visitRepo,
		touristRepo: touristRepo,
		ratingRepo:  ratingRepo,
		logger:      logger,
	}
}

// monthBounds границы месяца [первый день, последний день]
func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}
	if year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return ErrInvalidRange
	}
	return nil
}

// MonthlyVisitCount считает неотменённые визиты за месяц
func (s *Service) MonthlyVisitCount(ctx context.Context, year, month int) (int, error) {
	s.logger.Info("MonthlyVisitCount: year=%d, month=%d", year, month)

	if err := validateMonth(year, month); err != nil {
		return 0, err
	}

	start, end := monthBounds(year, month)
	count, err := s.visitRepo.CountByPeriod(ctx, domain.VisitsFilter{
		StartDate:        &start,
		EndDate:          &end,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("MonthlyVisitCount: repository error: %v", err)
		return 0, fmt.Errorf("%w: MonthlyVisitCount - repository error: %v", ErrInternal, err)
	}

	return count, nil
}

// MonthlyGuideBreakdown возвращает визиты по гидам за месяц,
// по убыванию числа визитов
func (s *Service) MonthlyGuideBreakdown(ctx context.Context, year, month int) ([]models.GuideVisitCount, error) {
	s.logger.Info("MonthlyGuideBreakdown: year=%d, month=%d", year, month)

	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	start, end := monthBounds(year, month)
	breakdown, err := s.visitRepo.GetGuideBreakdown(ctx, domain.VisitsFilter{
		StartDate:        &start,
		EndDate:          &end,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("MonthlyGuideBreakdown: repository error: %v", err)
		return nil, fmt.Errorf("%w: MonthlyGuideBreakdown - repository error: %v", ErrInternal, err)
	}

	result := make([]models.GuideVisitCount, 0, len(breakdown))
	for _, b := range breakdown {
		result = append(result, models.GuideVisitCount{
			GuideID:    b.GuideID,
			FirstName:  b.FirstName,
			LastName:   b.LastName,
			VisitCount: b.VisitCount,
		})
	}

	return result, nil
}

// MonthlyOverview собирает сводку месяца: визиты, гиды, туристы, посещаемость
func (s *Service) MonthlyOverview(ctx context.Context, year, month int) (*models.MonthlyOverviewResponse, error) {
	s.logger.Info("MonthlyOverview: year=%d, month=%d", year, month)

	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	start, end := monthBounds(year, month)
	filter := domain.VisitsFilter{
		StartDate:        &start,
		EndDate:          &end,
		ExcludeCancelled: true,
	}

	totalVisits, err := s.visitRepo.CountByPeriod(ctx, filter)
	if err != nil {
		s.logger.Error("MonthlyOverview: visit count error: %v", err)
		return nil, fmt.Errorf("%w: MonthlyOverview - visit count: %v", ErrInternal, err)
	}

	distinctGuides, err := s.visitRepo.CountDistinctGuides(ctx, filter)
	if err != nil {
		s.logger.Error("MonthlyOverview: distinct guides error: %v", err)
		return nil, fmt.Errorf("%w: MonthlyOverview - distinct guides: %v", ErrInternal, err)
	}

	presence, err := s.touristRepo.GetPresenceStats(ctx, nil, &start, &end)
	if err != nil {
		s.logger.Error("MonthlyOverview: presence stats error: %v", err)
		return nil, fmt.Errorf("%w: MonthlyOverview - presence stats: %v", ErrInternal, err)
	}

	breakdown, err := s.MonthlyGuideBreakdown(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return &models.MonthlyOverviewResponse{
		Year:           year,
		Month:          month,
		TotalVisits:    totalVisits,
		DistinctGuides: distinctGuides,
		TotalTourists:  presence.TotalTourists,
		PresentCount:   presence.PresentTourists,
		PresenceRate:   presence.Rate(),
		GuideBreakdown: breakdown,
	}, nil
}

// PresenceRate возвращает процент присутствия туристов за период.
// 0 при отсутствии туристов.
func (s *Service) PresenceRate(ctx context.Context, start, end time.Time) (float64, error) {
	s.logger.Info("PresenceRate: period=%s to %s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if err := validateRange(start, end); err != nil {
		return 0, err
	}

	stats, err := s.touristRepo.GetPresenceStats(ctx, nil, &start, &end)
	if err != nil {
		s.logger.Error("PresenceRate: repository error: %v", err)
		return 0, fmt.Errorf("%w: PresenceRate - repository error: %v", ErrInternal, err)
	}

	return stats.Rate(), nil
}

// GuidePerformance собирает показатели гида за период:
// визиты, средняя одобренная оценка, туристы и посещаемость
func (s *Service) GuidePerformance(ctx context.Context, guideID int64, start, end time.Time) (*models.GuidePerformanceResponse, error) {
	s.logger.Info("GuidePerformance: guide=%d, period=%s to %s",
		guideID, start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	filter := domain.VisitsFilter{
		GuideID:          &guideID,
		StartDate:        &start,
		EndDate:          &end,
		ExcludeCancelled: true,
	}

	totalVisits, err := s.visitRepo.CountByPeriod(ctx, filter)
	if err != nil {
		s.logger.Error("GuidePerformance: visit count error for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GuidePerformance - visit count: %v", ErrInternal, err)
	}

	avgRating, err := s.ratingRepo.GetAverageScoreForGuide(ctx, guideID, &start, &end)
	if err != nil {
		s.logger.Error("GuidePerformance: rating error for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GuidePerformance - average rating: %v", ErrInternal, err)
	}

	presence, err := s.touristRepo.GetPresenceStats(ctx, &guideID, &start, &end)
	if err != nil {
		s.logger.Error("GuidePerformance: presence stats error for guide=%d: %v", guideID, err)
		return nil, fmt.Errorf("%w: GuidePerformance - presence stats: %v", ErrInternal, err)
	}

	return &models.GuidePerformanceResponse{
		GuideID:         guideID,
		StartDate:       start.Format(domain.DateFormat),
		EndDate:         end.Format(domain.DateFormat),
		TotalVisits:     totalVisits,
		AverageRating:   avgRating,
		TotalTourists:   presence.TotalTourists,
		PresentTourists: presence.PresentTourists,
		PresenceRate:    presence.Rate(),
	}, nil
}

// PopularActivities возвращает локации по убыванию числа визитов за период
func (s *Service) PopularActivities(ctx context.Context, start, end time.Time) (*models.PopularActivitiesResponse, error) {
	s.logger.Info("PopularActivities: period=%s to %s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	locations, err := s.visitRepo.GetPopularLocations(ctx, domain.VisitsFilter{
		StartDate:        &start,
		EndDate:          &end,
		ExcludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("PopularActivities: repository error: %v", err)
		return nil, fmt.Errorf("%w: PopularActivities - repository error: %v", ErrInternal, err)
	}

	result := &models.PopularActivitiesResponse{
		StartDate:  start.Format(domain.DateFormat),
		EndDate:    end.Format(domain.DateFormat),
		Activities: make([]models.ActivityCount, 0, len(locations)),
	}
	for _, l := range locations {
		result.Activities = append(result.Activities, models.ActivityCount{
			Location:   l.Location,
			VisitCount: l.VisitCount,
		})
	}

	return result, nil
}
