package reservation

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

const constraintNoOverlap = "reservas_sin_solapamiento"

var columns = []string{
	"id_reserva",
	"id_instalacion",
	"id_usuario",
	"fecha",
	"hora_inicio",
	"hora_fin",
	"created_at",
}

// Repository репозиторий для работы с резервами времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резервов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает резерв
// Пересечение с существующим резервом отклоняется exclusion-ограничением и возвращается как ErrOverlap
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns("id_instalacion", "id_usuario", "fecha", "hora_inicio", "hora_fin").
		Values(
			res.InstallationID,
			res.UserID,
			res.Date.Format(domain.DateFormat),
			res.StartTime,
			res.EndTime,
		).
		Suffix("RETURNING id_reserva, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt)
	if pgerrors.IsExclusionViolation(err, constraintNoOverlap) {
		return nil, ErrOverlap
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает резерв по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservas").
		Where(squirrel.Eq{"id_reserva": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByInstallationAndDate получает резервы инсталляции на дату, упорядоченные по началу
func (r *Repository) GetByInstallationAndDate(ctx context.Context, installationID int64, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservas").
		Where(squirrel.Eq{
			"id_instalacion": installationID,
			"fecha":          date.Format(domain.DateFormat),
		}).
		OrderBy("hora_inicio").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstallationAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, executor, "GetByInstallationAndDate", query, args)
}

// GetByUserID получает резервы пользователя, ближайшие первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservas").
		Where(squirrel.Eq{"id_usuario": userID}).
		OrderBy("fecha", "hora_inicio").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, executor, "GetByUserID", query, args)
}

// Delete удаляет резерв
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id_reserva": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) queryMany(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation

	err := row.Scan(
		&res.ID,
		&res.InstallationID,
		&res.UserID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &res, nil
}
