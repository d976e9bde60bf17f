package rating

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/psqlbuilder"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий для работы с оценками
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория оценок
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает оценку. Уникальность пары (visit_id, user_id)
// гарантируется индексом; нарушение транслируется в ErrDuplicateRating.
func (r *Repository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ratings").
		Columns(
			"visit_id",
			"user_id",
			"score",
			"comment",
			"status",
		).
		Values(
			rating.VisitID,
			rating.UserID,
			rating.Score,
			rating.Comment,
			rating.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rating.ID, &createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateRating
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rating.CreatedAt = createdAt.Time
	rating.UpdatedAt = updatedAt.Time

	return rating, nil
}

// GetByID получает оценку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"visit_id",
		"user_id",
		"score",
		"comment",
		"status",
		"created_at",
		"updated_at",
	).
		From("ratings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rating domain.Rating
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rating.ID,
		&rating.VisitID,
		&rating.UserID,
		&rating.Score,
		&rating.Comment,
		&rating.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rating: %v", ErrScanRow, err)
	}

	rating.CreatedAt = createdAt.Time
	rating.UpdatedAt = updatedAt.Time

	return &rating, nil
}

// UpdateStatus меняет модерационный статус оценки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RatingStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("ratings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRatingNotFound
	}

	return nil
}

// GetAverageScoreForGuide средняя одобренная оценка по визитам гида за период.
// Возвращает 0, если одобренных оценок нет.
func (r *Repository) GetAverageScoreForGuide(ctx context.Context, guideID int64, startDate, endDate *time.Time) (float64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COALESCE(AVG(rt.score), 0)").
		From("ratings rt").
		Join("visits v ON v.id = rt.visit_id").
		Where(squirrel.Eq{"v.guide_id": guideID, "rt.status": domain.RatingApproved})

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"v.visit_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"v.visit_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetAverageScoreForGuide - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: GetAverageScoreForGuide - scan average: %v", ErrScanRow, err)
	}

	return avg, nil
}
