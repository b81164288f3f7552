package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/pgerrors"
	"github.com/m04kA/SMC-FieldService/pkg/psqlbuilder"
)

const (
	constraintNationalID = "clientes_dni_key"
	constraintCode       = "clientes_codigo_cliente_key"

	// codeSequenceLockKey ключ advisory-блокировки генерации кодов клиентов
	codeSequenceLockKey = 5000
)

var columns = []string{
	"id_cliente",
	"nombre",
	"dni",
	"telefono",
	"direccion",
	"plan",
	"codigo_cliente",
	"pppoe_password",
	"estado_pago",
	"fecha_proximo_pago",
	"onu_sn",
	"created_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
// Нарушение уникальности DNI или кода возвращается как ErrDuplicateNationalID / ErrDuplicateCode
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clientes").
		Columns(
			"nombre",
			"dni",
			"telefono",
			"direccion",
			"plan",
			"codigo_cliente",
			"pppoe_password",
			"estado_pago",
			"fecha_proximo_pago",
			"onu_sn",
		).
		Values(
			client.Name,
			client.NationalID,
			client.Phone,
			client.Address,
			client.Plan,
			client.Code,
			client.ProvisioningPassword,
			client.PaymentState,
			client.NextPaymentDate,
			client.OnuSerial,
		).
		Suffix("RETURNING id_cliente, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&client.ID, &client.CreatedAt)
	switch {
	case pgerrors.IsUniqueViolation(err, constraintNationalID):
		return nil, ErrDuplicateNationalID
	case pgerrors.IsUniqueViolation(err, constraintCode):
		return nil, ErrDuplicateCode
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return client, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id_cliente": id})
}

// GetByNationalID получает клиента по DNI
func (r *Repository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Client, error) {
	return r.getOne(ctx, "GetByNationalID", squirrel.Eq{"dni": nationalID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("clientes").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	client, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	return client, nil
}

// LockCodeSequence сериализует генерацию кодов клиентов до конца транзакции
// Вне транзакции ничего не делает
func (r *Repository) LockCodeSequence(ctx context.Context) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", codeSequenceLockKey); err != nil {
		return fmt.Errorf("%w: LockCodeSequence - execute: %v", ErrExecQuery, err)
	}
	return nil
}

// GetLastCodeNumber возвращает максимальный числовой префикс среди кодов вида "<prefix>NNN-..."
// Второе значение false, если ни одного такого кода нет
func (r *Repository) GetLastCodeNumber(ctx context.Context, prefix string) (int, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("MAX(CAST(split_part(codigo_cliente, '-', 1) AS BIGINT))").
		From("clientes").
		Where("codigo_cliente ~ ?", "^"+prefix+"[0-9]*-").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("%w: GetLastCodeNumber - build select query: %v", ErrBuildQuery, err)
	}

	var last sql.NullInt64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		return 0, false, fmt.Errorf("%w: GetLastCodeNumber - scan: %v", ErrScanRow, err)
	}

	return int(last.Int64), last.Valid, nil
}

// Search ищет клиентов по подстроке имени, DNI или телефона
func (r *Repository) Search(ctx context.Context, term string, limit int) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pattern := "%" + term + "%"
	query, args, err := psqlbuilder.Select(columns...).
		From("clientes").
		Where(squirrel.Or{
			squirrel.ILike{"nombre": pattern},
			squirrel.ILike{"dni": pattern},
			squirrel.ILike{"telefono": pattern},
			squirrel.ILike{"codigo_cliente": pattern},
		}).
		OrderBy("nombre").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, executor, "Search", query, args)
}

// GetOverdue получает активных клиентов с датой оплаты строго раньше today
func (r *Repository) GetOverdue(ctx context.Context, today time.Time) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("clientes").
		Where(squirrel.Eq{"estado_pago": domain.PaymentActive}).
		Where(squirrel.Lt{"fecha_proximo_pago": today.Format(domain.DateFormat)}).
		OrderBy("id_cliente").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverdue - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, executor, "GetOverdue", query, args)
}

// UpdatePaymentState меняет состояние оплаты, только если текущее равно from
func (r *Repository) UpdatePaymentState(ctx context.Context, id int64, from, to domain.PaymentState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clientes").
		Set("estado_pago", to).
		Where(squirrel.Eq{"id_cliente": id, "estado_pago": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentState - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentStateConflict
	}

	return nil
}

func (r *Repository) queryMany(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Client, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return clients, nil
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	var nextPayment sql.NullTime

	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.NationalID,
		&client.Phone,
		&client.Address,
		&client.Plan,
		&client.Code,
		&client.ProvisioningPassword,
		&client.PaymentState,
		&nextPayment,
		&client.OnuSerial,
		&client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if nextPayment.Valid {
		client.NextPaymentDate = &nextPayment.Time
	}

	return &client, nil
}
