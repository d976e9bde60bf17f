package add_tourist

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
)

// UseCase use case добавления туриста к визиту
type UseCase struct {
	visitRepo   VisitRepository
	touristRepo TouristRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	touristRepo TouristRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:   visitRepo,
		touristRepo: touristRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case добавления туриста.
// Подсчёт группы и вставка выполняются в сериализуемой транзакции
// с блокировкой строки визита, чтобы два одновременных добавления
// не переполнили группу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddTourist: visit=%d, tourist=%s %s", req.VisitID, req.FirstName, req.LastName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddTourist: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Tourist

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем строку визита (FOR UPDATE)
		visit, err := uc.visitRepo.GetByID(txCtx, req.VisitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				uc.logger.Warn("AddTourist: visit id=%d not found", req.VisitID)
				return ErrVisitNotFound
			}
			uc.logger.Error("AddTourist: failed to get visit id=%d: %v", req.VisitID, err)
			return fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
		}

		// Туристов добавляют только к предстоящим и идущим визитам
		if visit.Status.IsTerminal() {
			uc.logger.Warn("AddTourist: visit id=%d is not active, status=%s", req.VisitID, visit.Status)
			return ErrVisitNotActive
		}

		count, err := uc.touristRepo.CountByVisit(txCtx, req.VisitID)
		if err != nil {
			uc.logger.Error("AddTourist: failed to count tourists for visit id=%d: %v", req.VisitID, err)
			return fmt.Errorf("%w: failed to count tourists: %v", ErrInternal, err)
		}

		if count >= domain.MaxTouristsPerVisit {
			uc.logger.Warn("AddTourist: visit id=%d is full, %d/%d tourists",
				req.VisitID, count, domain.MaxTouristsPerVisit)
			return ErrCapacityExceeded
		}

		created, err := uc.touristRepo.Create(txCtx, &domain.Tourist{
			VisitID:   req.VisitID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsPresent: false,
			Comment:   req.Comment,
		})
		if err != nil {
			uc.logger.Error("AddTourist: failed to create tourist for visit id=%d: %v", req.VisitID, err)
			return fmt.Errorf("%w: failed to create tourist: %v", ErrInternal, err)
		}

		result = created
		uc.logger.Info("AddTourist: tourist id=%d added, group %d/%d",
			created.ID, count+1, domain.MaxTouristsPerVisit)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &Response{
		ID:        result.ID,
		VisitID:   result.VisitID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		IsPresent: result.IsPresent,
		Comment:   result.Comment,
		CreatedAt: result.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VisitID <= 0 {
		return fmt.Errorf("%w: visitID must be positive", ErrInvalidInput)
	}

	if req.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}

	if req.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	return nil
}
