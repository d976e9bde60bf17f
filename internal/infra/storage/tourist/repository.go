package tourist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/psqlbuilder"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
)

// Repository репозиторий для работы с туристами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория туристов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create добавляет туриста к визиту
func (r *Repository) Create(ctx context.Context, tourist *domain.Tourist) (*domain.Tourist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tourists").
		Columns(
			"visit_id",
			"first_name",
			"last_name",
			"is_present",
			"comment",
		).
		Values(
			tourist.VisitID,
			tourist.FirstName,
			tourist.LastName,
			tourist.IsPresent,
			tourist.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tourist.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tourist.CreatedAt = createdAt.Time
	tourist.UpdatedAt = updatedAt.Time

	return tourist, nil
}

// CountByVisit считает туристов визита.
// Для атомарной проверки вместимости вызывающая сторона блокирует
// строку визита FOR UPDATE перед подсчётом.
func (r *Repository) CountByVisit(ctx context.Context, visitID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("tourists").
		Where(squirrel.Eq{"visit_id": visitID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByVisit - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByVisit - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByVisit получает туристов визита
func (r *Repository) ListByVisit(ctx context.Context, visitID int64) ([]*domain.Tourist, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"visit_id",
		"first_name",
		"last_name",
		"is_present",
		"comment",
		"created_at",
		"updated_at",
	).
		From("tourists").
		Where(squirrel.Eq{"visit_id": visitID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVisit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVisit - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tourists := make([]*domain.Tourist, 0)
	for rows.Next() {
		var t domain.Tourist
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.VisitID,
			&t.FirstName,
			&t.LastName,
			&t.IsPresent,
			&t.Comment,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVisit - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time
		tourists = append(tourists, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVisit - rows error: %v", ErrScanRow, err)
	}

	return tourists, nil
}

// GetPresenceStats агрегирует посещаемость по визитам за период.
// guideID сужает выборку до визитов конкретного гида.
func (r *Repository) GetPresenceStats(ctx context.Context, guideID *int64, startDate, endDate *time.Time) (domain.PresenceStats, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(t.id)",
		"COALESCE(SUM(CASE WHEN t.is_present THEN 1 ELSE 0 END), 0)",
	).
		From("tourists t").
		Join("visits v ON v.id = t.visit_id")

	if guideID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"v.guide_id": *guideID})
	}
	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"v.visit_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"v.visit_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return domain.PresenceStats{}, fmt.Errorf("%w: GetPresenceStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.PresenceStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stats.TotalTourists, &stats.PresentTourists)
	if err != nil {
		return domain.PresenceStats{}, fmt.Errorf("%w: GetPresenceStats - scan stats: %v", ErrScanRow, err)
	}

	return stats, nil
}

// UpdatePresence отмечает присутствие туриста
func (r *Repository) UpdatePresence(ctx context.Context, id int64, isPresent bool, comment *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("tourists").
		Set("is_present", isPresent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if comment != nil {
		updateBuilder = updateBuilder.Set("comment", *comment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePresence - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePresence - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePresence - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTouristNotFound
	}

	return nil
}
