package inventory

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

const constraintSerial = "inventario_numero_serie_key"

var columns = []string{
	"id_equipo",
	"numero_serie",
	"modelo",
	"estado",
	"fecha_ingreso",
	"fecha_instalacion",
}

// Repository репозиторий для работы со складом оборудования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оборудования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует оборудование
func (r *Repository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inventario").
		Columns("numero_serie", "modelo", "estado", "fecha_ingreso", "fecha_instalacion").
		Values(
			item.SerialNumber,
			item.Model,
			item.State,
			item.ReceivedOn.Format(domain.DateFormat),
			item.InstalledAt,
		).
		Suffix("RETURNING id_equipo").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID)
	if pgerrors.IsUniqueViolation(err, constraintSerial) {
		return nil, ErrDuplicateSerial
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает оборудование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id_equipo": id})
}

// GetBySerial получает оборудование по серийному номеру
func (r *Repository) GetBySerial(ctx context.Context, serial string) (*domain.InventoryItem, error) {
	return r.getOne(ctx, "GetBySerial", squirrel.Eq{"numero_serie": serial})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("inventario").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
	}

	return item, nil
}

// List получает оборудование, опционально только в указанном состоянии
func (r *Repository) List(ctx context.Context, state *domain.ItemState) ([]*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("inventario").
		OrderBy("fecha_ingreso DESC", "id_equipo DESC")

	if state != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *state})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan item: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return items, nil
}

// MarkInstalled переводит оборудование из Disponible в Instalado
// ErrItemNotFound, если оборудования нет; ErrNotAvailable, если оно уже установлено
func (r *Repository) MarkInstalled(ctx context.Context, id int64, installedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inventario").
		Set("estado", domain.ItemInstalled).
		Set("fecha_instalacion", installedAt).
		Where(squirrel.Eq{"id_equipo": id, "estado": domain.ItemAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkInstalled - build update query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := r.exec(ctx, executor, "MarkInstalled", query, args)
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	// Различаем отсутствие оборудования и уже установленное
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrNotAvailable
}

// Update обновляет серийный номер, модель, состояние и дату установки
func (r *Repository) Update(ctx context.Context, item *domain.InventoryItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inventario").
		Set("numero_serie", item.SerialNumber).
		Set("modelo", item.Model).
		Set("estado", item.State).
		Set("fecha_instalacion", item.InstalledAt).
		Where(squirrel.Eq{"id_equipo": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := r.exec(ctx, executor, "Update", query, args)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete удаляет оборудование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("inventario").
		Where(squirrel.Eq{"id_equipo": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := r.exec(ctx, executor, "Delete", query, args)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	switch {
	case pgerrors.IsUniqueViolation(err, constraintSerial):
		return 0, ErrDuplicateSerial
	case pgerrors.IsForeignKeyViolation(err):
		return 0, ErrItemInUse
	case err != nil:
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

func scanItem(row rowScanner) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var installedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.SerialNumber,
		&item.Model,
		&item.State,
		&item.ReceivedOn,
		&installedAt,
	)
	if err != nil {
		return nil, err
	}

	if installedAt.Valid {
		item.InstalledAt = &installedAt.Time
	}

	return &item, nil
}
