package unavailability

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

// Repository репозиторий для записей недоступности гидов
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория недоступности
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByGuideAndDate получает запись недоступности гида на день.
// Возвращает ErrNotFound, если гида ничего не блокирует.
func (r *Repository) GetByGuideAndDate(ctx context.Context, guideID int64, date time.Time) (*domain.GuideUnavailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"guide_id",
		"unavailable_date",
		"reason",
		"created_at",
	).
		From("guide_unavailability").
		Where(squirrel.Eq{"guide_id": guideID, "unavailable_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuideAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.GuideUnavailability
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.GuideID,
		&record.Date,
		&record.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuideAndDate - scan record: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}

// Create добавляет запись недоступности.
// Повторная вставка на ту же дату перезаписывает причину (upsert).
func (r *Repository) Create(ctx context.Context, record *domain.GuideUnavailability) (*domain.GuideUnavailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guide_unavailability").
		Columns("guide_id", "unavailable_date", "reason").
		Values(record.GuideID, record.Date, record.Reason).
		Suffix("ON CONFLICT (guide_id, unavailable_date) DO UPDATE SET reason = EXCLUDED.reason").
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// DeleteByGuideAndDate снимает недоступность гида на день
func (r *Repository) DeleteByGuideAndDate(ctx context.Context, guideID int64, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guide_unavailability").
		Where(squirrel.Eq{"guide_id": guideID, "unavailable_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByGuideAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByGuideAndDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByGuideAndDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByGuide получает все записи недоступности гида за период
func (r *Repository) ListByGuide(ctx context.Context, guideID int64, startDate, endDate *time.Time) ([]*domain.GuideUnavailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"guide_id",
		"unavailable_date",
		"reason",
		"created_at",
	).
		From("guide_unavailability").
		Where(squirrel.Eq{"guide_id": guideID}).
		OrderBy("unavailable_date ASC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"unavailable_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"unavailable_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuide - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGuide - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.GuideUnavailability, 0)
	for rows.Next() {
		var record domain.GuideUnavailability
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.GuideID,
			&record.Date,
			&record.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByGuide - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByGuide - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
