package guide

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/psqlbuilder"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
)

var guideColumns = []string{
	"id",
	"first_name",
	"last_name",
	"country",
	"status",
	"photo",
	"user_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с гидами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория гидов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID получает гида по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guide, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guideColumns...).
		From("guides").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	guide, err := scanGuideRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guide: %v", ErrScanRow, err)
	}

	return guide, nil
}

// ListActive получает всех активных гидов, отсортированных по имени.
// Детерминированный порядок нужен для подбора замен.
func (r *Repository) ListActive(ctx context.Context, excludeID *int64) ([]*domain.Guide, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(guideColumns...).
		From("guides").
		Where(squirrel.Eq{"status": domain.GuideActive}).
		OrderBy("last_name ASC, first_name ASC, id ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guides := make([]*domain.Guide, 0)
	for rows.Next() {
		guide, err := scanGuideRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		guides = append(guides, guide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return guides, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuideRow(row rowScanner) (*domain.Guide, error) {
	var guide domain.Guide
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&guide.ID,
		&guide.FirstName,
		&guide.LastName,
		&guide.Country,
		&guide.Status,
		&guide.Photo,
		&guide.UserID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	guide.CreatedAt = createdAt.Time
	guide.UpdatedAt = updatedAt.Time

	return &guide, nil
}
