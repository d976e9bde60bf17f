package schedule_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	guideRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/guide"
	placeRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/place"
	unavailabilityRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/unavailability"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
)

// UseCase use case постановки визита в расписание
type UseCase struct {
	visitRepo          VisitRepository
	guideRepo          GuideRepository
	placeRepo          PlaceRepository
	unavailabilityRepo UnavailabilityRepository
	notifier           ScheduleNotifier
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	guideRepo GuideRepository,
	placeRepo PlaceRepository,
	unavailabilityRepo UnavailabilityRepository,
	notifier ScheduleNotifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:          visitRepo,
		guideRepo:          guideRepo,
		placeRepo:          placeRepo,
		unavailabilityRepo: unavailabilityRepo,
		notifier:           notifier,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case постановки визита в расписание.
// Проверка занятости гида и вставка выполняются в сериализуемой
// транзакции с блокировкой строк, чтобы исключить гонку двух
// одновременных визитов в одном окне.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleVisit: guide=%d, place=%d, date=%s, time=%s, duration=%d",
		req.GuideID, req.PlaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleVisit: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация расписания: дата не в прошлом
	if err := validateSchedule(req, now); err != nil {
		uc.logger.Warn("ScheduleVisit: schedule validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем гида и проверяем, что он активен
	guide, err := uc.guideRepo.GetByID(ctx, req.GuideID)
	if err != nil {
		if errors.Is(err, guideRepo.ErrGuideNotFound) {
			uc.logger.Warn("ScheduleVisit: guide id=%d not found", req.GuideID)
			return nil, ErrGuideNotFound
		}
		uc.logger.Error("ScheduleVisit: failed to get guide id=%d: %v", req.GuideID, err)
		return nil, fmt.Errorf("%w: failed to get guide: %v", ErrInternal, err)
	}
	if !guide.IsActive() {
		uc.logger.Warn("ScheduleVisit: guide id=%d is not active, status=%s", req.GuideID, guide.Status)
		return nil, ErrGuideInactive
	}

	// 5. Получаем место
	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("ScheduleVisit: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("ScheduleVisit: failed to get place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	window := domain.TimeWindow{Start: req.StartTime, DurationMinutes: req.DurationMinutes}

	var result *domain.Visit

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокировка дня действует на любое окно
		_, err := uc.unavailabilityRepo.GetByGuideAndDate(txCtx, req.GuideID, req.Date)
		if err == nil {
			uc.logger.Warn("ScheduleVisit: guide id=%d is blocked on %s", req.GuideID, req.Date.Format(domain.DateFormat))
			return ErrGuideUnavailable
		}
		if !errors.Is(err, unavailabilityRepo.ErrNotFound) {
			uc.logger.Error("ScheduleVisit: unavailability lookup failed: %v", err)
			return fmt.Errorf("%w: unavailability lookup: %v", ErrInternal, err)
		}

		// 6.2. Визиты гида на этот день с блокировкой (FOR UPDATE)
		visits, err := uc.visitRepo.GetByFilter(txCtx, domain.VisitsFilter{
			GuideID:          &req.GuideID,
			Date:             &req.Date,
			ExcludeCancelled: true,
		})
		if err != nil {
			uc.logger.Error("ScheduleVisit: failed to get visits: %v", err)
			return fmt.Errorf("%w: failed to get visits: %v", ErrInternal, err)
		}

		// 6.3. Проверяем пересечение окон; визиты встык допустимы
		for _, visit := range visits {
			overlaps, err := window.Overlaps(visit.Window())
			if err != nil {
				uc.logger.Error("ScheduleVisit: overlap check failed: %v", err)
				return fmt.Errorf("%w: overlap check: %v", ErrInternal, err)
			}
			if overlaps {
				uc.logger.Warn("ScheduleVisit: guide id=%d busy with visit id=%d at %s",
					req.GuideID, visit.ID, visit.StartTime)
				return ErrGuideUnavailable
			}
		}

		// 6.4. Создаем визит
		created, err := uc.visitRepo.Create(txCtx, &domain.Visit{
			GuideID:         req.GuideID,
			PlaceID:         req.PlaceID,
			Location:        place.Name,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.VisitScheduled,
		})
		if err != nil {
			uc.logger.Error("ScheduleVisit: failed to create visit: %v", err)
			return fmt.Errorf("%w: failed to create visit: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleVisit: successfully created visit id=%d", result.ID)

	// 7. Уведомление после коммита, fire-and-forget
	if err := uc.notifier.NotifyScheduleChange(ctx, notifier.ScheduleChangeEvent{
		VisitID:   result.ID,
		GuideID:   result.GuideID,
		VisitDate: result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime.String(),
		Kind:      notifier.KindScheduled,
	}); err != nil {
		uc.logger.Warn("ScheduleVisit: notifier failed for visit id=%d: %v", result.ID, err)
	}

	resp := &Response{
		ID:              result.ID,
		GuideID:         result.GuideID,
		PlaceID:         result.PlaceID,
		Location:        result.Location,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}
	if end, err := result.EndTime(); err == nil {
		resp.EndTime = end
	}

	return resp, nil
}
