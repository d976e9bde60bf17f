package refund

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

var refundColumns = []string{
	"id",
	"visit_id",
	"amount",
	"reason",
	"status",
	"rejection_reason",
	"requested_by",
	"requested_at",
	"processed_by",
	"processed_at",
}

// Repository репозиторий для работы с возвратами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория возвратов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает запрос на возврат
func (r *Repository) Create(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("refunds").
		Columns(
			"visit_id",
			"amount",
			"reason",
			"status",
			"requested_by",
			"requested_at",
		).
		Values(
			refund.VisitID,
			refund.Amount,
			refund.Reason,
			refund.Status,
			refund.RequestedBy,
			refund.RequestedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&refund.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return refund, nil
}

// GetByID получает возврат по ID.
// В транзакции строка блокируется FOR UPDATE, чтобы два процессора
// не обработали один возврат одновременно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Refund, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(refundColumns...).
		From("refunds").
		Where(squirrel.Eq{"id": id})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	refund, err := scanRefundRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRefundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan refund: %v", ErrScanRow, err)
	}

	return refund, nil
}

// HasPendingByVisit проверяет, есть ли у визита необработанный возврат
func (r *Repository) HasPendingByVisit(ctx context.Context, visitID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("refunds").
		Where(squirrel.Eq{"visit_id": visitID, "status": domain.RefundPending}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasPendingByVisit - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasPendingByVisit - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// UpdateDecision фиксирует решение по возврату
func (r *Repository) UpdateDecision(
	ctx context.Context,
	id int64,
	status domain.RefundStatus,
	rejectionReason *string,
	processedBy int64,
	processedAt time.Time,
) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("refunds").
		Set("status", status).
		Set("processed_by", processedBy).
		Set("processed_at", processedAt).
		Where(squirrel.Eq{"id": id})

	if rejectionReason != nil {
		updateBuilder = updateBuilder.Set("rejection_reason", *rejectionReason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRefundNotFound
	}

	return nil
}

// ListPending получает все необработанные возвраты, старые первыми
func (r *Repository) ListPending(ctx context.Context) ([]*domain.Refund, error) {
	return r.list(ctx, squirrel.Eq{"status": domain.RefundPending}, "requested_at ASC")
}

// ListByVisit получает историю возвратов по визиту, новые первыми
func (r *Repository) ListByVisit(ctx context.Context, visitID int64) ([]*domain.Refund, error) {
	return r.list(ctx, squirrel.Eq{"visit_id": visitID}, "requested_at DESC")
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, orderBy string) ([]*domain.Refund, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(refundColumns...).
		From("refunds").
		Where(where).
		OrderBy(orderBy).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	refunds := make([]*domain.Refund, 0)
	for rows.Next() {
		refund, err := scanRefundRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		refunds = append(refunds, refund)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return refunds, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRefundRow(row rowScanner) (*domain.Refund, error) {
	var refund domain.Refund
	var requestedAt sql.NullTime

	err := row.Scan(
		&refund.ID,
		&refund.VisitID,
		&refund.Amount,
		&refund.Reason,
		&refund.Status,
		&refund.RejectionReason,
		&refund.RequestedBy,
		&requestedAt,
		&refund.ProcessedBy,
		&refund.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}

	refund.RequestedAt = requestedAt.Time

	return &refund, nil
}
