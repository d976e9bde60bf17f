package place

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/psqlbuilder"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
)

// Repository репозиторий для работы с местами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID получает место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"country",
		"category_id",
		"description",
		"photo",
		"created_at",
		"updated_at",
	).
		From("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var place domain.Place
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&place.ID,
		&place.Name,
		&place.Country,
		&place.CategoryID,
		&place.Description,
		&place.Photo,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan place: %v", ErrScanRow, err)
	}

	place.CreatedAt = createdAt.Time
	place.UpdatedAt = updatedAt.Time

	return &place, nil
}
