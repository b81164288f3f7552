package transfer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/psqlbuilder"
)

var columns = []string{
	"id_solicitud",
	"id_tarea",
	"id_solicitante",
	"id_receptor",
	"estado",
	"created_at",
	"resuelta_at",
}

// Repository репозиторий для работы с запросами передачи задач
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов передачи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый запрос передачи
func (r *Repository) Create(ctx context.Context, req *domain.TransferRequest) (*domain.TransferRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("solicitudes_traspaso").
		Columns("id_tarea", "id_solicitante", "id_receptor", "estado").
		Values(req.TaskID, req.RequesterID, req.RecipientID, req.Status).
		Suffix("RETURNING id_solicitud, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос передачи по ID, в транзакции с блокировкой строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TransferRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("solicitudes_traspaso").
		Where(squirrel.Eq{"id_solicitud": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanTransfer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTransferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transfer: %v", ErrScanRow, err)
	}

	return req, nil
}

// Resolve фиксирует решение получателя, только если запрос ещё в статусе Pendiente
func (r *Repository) Resolve(ctx context.Context, id int64, status domain.TransferStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("solicitudes_traspaso").
		Set("estado", status).
		Set("resuelta_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id_solicitud": id, "estado": domain.TransferPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Resolve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Resolve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Resolve - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAlreadyResolved
	}

	return nil
}

// GetPendingByRecipient получает входящие запросы техника, ожидающие решения
func (r *Repository) GetPendingByRecipient(ctx context.Context, recipientID int64) ([]*domain.TransferRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("solicitudes_traspaso").
		Where(squirrel.Eq{"id_receptor": recipientID, "estado": domain.TransferPending}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByRecipient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByRecipient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.TransferRequest, 0)
	for rows.Next() {
		req, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetPendingByRecipient - scan transfer: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPendingByRecipient - rows iteration: %v", ErrScanRow, err)
	}

	return requests, nil
}

func scanTransfer(row rowScanner) (*domain.TransferRequest, error) {
	var req domain.TransferRequest
	var resolvedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.TaskID,
		&req.RequesterID,
		&req.RecipientID,
		&req.Status,
		&req.CreatedAt,
		&resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		req.ResolvedAt = &resolvedAt.Time
	}

	return &req, nil
}
