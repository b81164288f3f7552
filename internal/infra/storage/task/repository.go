package task

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/pgerrors"
	"github.com/m04kA/SMC-FieldService/pkg/psqlbuilder"
)

const constraintOneActive = "tareas_una_activa_por_instalacion"

var columns = []string{
	"id_tarea",
	"id_instalacion",
	"id_admin",
	"id_usuario_asignado",
	"tipo_tarea",
	"descripcion",
	"fecha_asignacion",
	"estado",
	"created_at",
}

// Repository репозиторий для работы с задачами техников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую задачу
// Вторая активная задача для той же инсталляции отклоняется частичным уникальным индексом
func (r *Repository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tareas").
		Columns(
			"id_instalacion",
			"id_admin",
			"id_usuario_asignado",
			"tipo_tarea",
			"descripcion",
			"fecha_asignacion",
			"estado",
		).
		Values(
			task.InstallationID,
			task.AdminID,
			task.TechnicianID,
			task.Type,
			task.Description,
			task.AssignedOn.Format(domain.DateFormat),
			task.Status,
		).
		Suffix("RETURNING id_tarea, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &task.CreatedAt)
	if pgerrors.IsUniqueViolation(err, constraintOneActive) {
		return nil, ErrActiveTaskExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return task, nil
}

// GetByID получает задачу по ID, в транзакции с блокировкой строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id_tarea": id})
}

// GetActiveByInstallation получает активную задачу инсталляции
func (r *Repository) GetActiveByInstallation(ctx context.Context, installationID int64) (*domain.Task, error) {
	return r.getOne(ctx, "GetActiveByInstallation", squirrel.Eq{
		"id_instalacion": installationID,
		"estado":         domain.ActiveTaskStatuses,
	})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("tareas").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	task, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan task: %v", ErrScanRow, op, err)
	}

	return task, nil
}

// UpdateStatus меняет статус задачи, только если текущий равен from
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.TaskStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tareas").
		Set("estado", to).
		Where(squirrel.Eq{"id_tarea": id, "estado": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "UpdateStatus", query, args)
}

// Reassign передаёт задачу другому технику
// Выполняется, только если задача в статусе from и принадлежит fromTechnicianID
func (r *Repository) Reassign(ctx context.Context, id, fromTechnicianID, toTechnicianID int64, from, to domain.TaskStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tareas").
		Set("id_usuario_asignado", toTechnicianID).
		Set("estado", to).
		Where(squirrel.Eq{
			"id_tarea":            id,
			"estado":              from,
			"id_usuario_asignado": fromTechnicianID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reassign - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "Reassign", query, args)
}

// GetByTechnician получает задачи техника, опционально отфильтрованные по статусам
func (r *Repository) GetByTechnician(ctx context.Context, technicianID int64, statuses []domain.TaskStatus) ([]*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("tareas").
		Where(squirrel.Eq{"id_usuario_asignado": technicianID}).
		OrderBy("fecha_asignacion DESC", "id_tarea DESC")

	if len(statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": statuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTechnician - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTechnician - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTechnician - scan task: %v", ErrScanRow, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTechnician - rows iteration: %v", ErrScanRow, err)
	}

	return tasks, nil
}

// CountByTechnician считает задачи техника по статусам
func (r *Repository) CountByTechnician(ctx context.Context, technicianID int64) (map[domain.TaskStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("estado", "COUNT(*)").
		From("tareas").
		Where(squirrel.Eq{"id_usuario_asignado": technicianID}).
		GroupBy("estado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTechnician - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTechnician - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.TaskStatus]int)
	for rows.Next() {
		var status domain.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByTechnician - scan: %v", ErrScanRow, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByTechnician - rows iteration: %v", ErrScanRow, err)
	}

	return counts, nil
}

func (r *Repository) execTransition(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err, constraintOneActive) {
		return ErrActiveTaskExists
	}
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task

	err := row.Scan(
		&task.ID,
		&task.InstallationID,
		&task.AdminID,
		&task.TechnicianID,
		&task.Type,
		&task.Description,
		&task.AssignedOn,
		&task.Status,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &task, nil
}
