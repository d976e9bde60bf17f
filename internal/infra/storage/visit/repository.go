package visit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	"github.com/travelparadise/TP-VisitService/pkg/psqlbuilder"
	"github.com/travelparadise/TP-VisitService/pkg/txmanager"
)

// visitColumns полный набор колонок таблицы visits
var visitColumns = []string{
	"id",
	"guide_id",
	"place_id",
	"location",
	"visit_date",
	"start_time",
	"duration_minutes",
	"status",
	"general_comment",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с визитами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит
func (r *Repository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns(
			"guide_id",
			"place_id",
			"location",
			"visit_date",
			"start_time",
			"duration_minutes",
			"status",
			"general_comment",
		).
		Values(
			visit.GuideID,
			visit.PlaceID,
			visit.Location,
			visit.Date,
			visit.StartTime,
			visit.DurationMinutes,
			visit.Status,
			visit.GeneralComment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&visit.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return visit, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visits").
		Where(squirrel.Eq{"id": id})

	// В транзакции строка блокируется до конца транзакции
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	visit, err := scanVisitRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	return visit, nil
}

// GetByFilter получает визиты по фильтру.
// В транзакции выборка по конкретному гиду и дню блокируется FOR UPDATE -
// так проверка доступности и последующая запись становятся атомарными.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visits")

	if filter.GuideID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guide_id": *filter.GuideID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"visit_date": *filter.Date})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.VisitCancelled)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("visit_date ASC, start_time ASC")
	}

	if txmanager.IsInTransaction(ctx) && filter.GuideID != nil && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// UpdateStatus обновляет статус визита.
// Для cancelled дополнительно сохраняет причину отмены.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.VisitStatus, cancellationReason *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("visits").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if cancellationReason != nil {
		updateBuilder = updateBuilder.Set("cancellation_reason", *cancellationReason)
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrVisitNotFound
	}

	return nil
}

// Close помечает визит завершённым и сохраняет общий комментарий
// одной записью
func (r *Repository) Close(ctx context.Context, id int64, generalComment *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("status", domain.VisitCompleted).
		Set("general_comment", generalComment).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

// CountByPeriod считает визиты за период
func (r *Repository) CountByPeriod(ctx context.Context, filter domain.VisitsFilter) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(id)").
		From("visits")

	if filter.GuideID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guide_id": *filter.GuideID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}
	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.VisitCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByPeriod - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GuideBreakdown агрегат "гид → число визитов" за период,
// по убыванию числа визитов
type GuideBreakdown struct {
	GuideID    int64
	FirstName  string
	LastName   string
	VisitCount int
}

// GetGuideBreakdown возвращает распределение визитов по гидам за период
func (r *Repository) GetGuideBreakdown(ctx context.Context, filter domain.VisitsFilter) ([]GuideBreakdown, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"g.id",
		"g.first_name",
		"g.last_name",
		"COUNT(v.id) AS visit_count",
	).
		From("visits v").
		Join("guides g ON g.id = v.guide_id").
		GroupBy("g.id", "g.first_name", "g.last_name").
		OrderBy("visit_count DESC, g.last_name ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"v.visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"v.visit_date": *filter.EndDate})
	}
	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"v.status": string(domain.VisitCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGuideBreakdown - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGuideBreakdown - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]GuideBreakdown, 0)
	for rows.Next() {
		var item GuideBreakdown
		if err := rows.Scan(&item.GuideID, &item.FirstName, &item.LastName, &item.VisitCount); err != nil {
			return nil, fmt.Errorf("%w: GetGuideBreakdown - scan row: %v", ErrScanRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetGuideBreakdown - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// LocationCount агрегат "локация → число визитов"
type LocationCount struct {
	Location   string
	VisitCount int
}

// GetPopularLocations возвращает локации с числом визитов за период,
// по убыванию числа визитов
func (r *Repository) GetPopularLocations(ctx context.Context, filter domain.VisitsFilter) ([]LocationCount, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"location",
		"COUNT(id) AS visit_count",
	).
		From("visits").
		GroupBy("location").
		OrderBy("visit_count DESC, location ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}
	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.VisitCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPopularLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPopularLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]LocationCount, 0)
	for rows.Next() {
		var item LocationCount
		if err := rows.Scan(&item.Location, &item.VisitCount); err != nil {
			return nil, fmt.Errorf("%w: GetPopularLocations - scan row: %v", ErrScanRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPopularLocations - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountDistinctGuides считает число разных гидов с визитами за период
func (r *Repository) CountDistinctGuides(ctx context.Context, filter domain.VisitsFilter) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(DISTINCT guide_id)").
		From("visits")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}
	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.VisitCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctGuides - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountDistinctGuides - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVisitRow(row rowScanner) (*domain.Visit, error) {
	var visit domain.Visit
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&visit.ID,
		&visit.GuideID,
		&visit.PlaceID,
		&visit.Location,
		&visit.Date,
		&visit.StartTime,
		&visit.DurationMinutes,
		&visit.Status,
		&visit.GeneralComment,
		&visit.CancellationReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return &visit, nil
}

func scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	visits := make([]*domain.Visit, 0)

	for rows.Next() {
		visit, err := scanVisitRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVisits - scan row: %v", ErrScanRow, err)
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVisits - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}
