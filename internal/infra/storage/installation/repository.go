package installation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldService/pkg/pgerrors"
	"github.com/m04kA/SMC-FieldService/pkg/psqlbuilder"
)

const constraintEquipment = "instalaciones_equipo_key"

var columns = []string{
	"id_instalacion",
	"id_cliente",
	"nombre",
	"descripcion",
	"ubicacion",
	"imagen_url",
	"estado",
	"id_instalador",
	"hora_solicitada",
	"descripcion_final",
	"ubicacion_gps_final",
	"foto_adjunta",
	"fecha_completado",
	"metodo_pago",
	"numero_transaccion",
	"id_equipo_instalado",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с инсталляциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инсталляций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую инсталляцию
func (r *Repository) Create(ctx context.Context, inst *domain.Installation) (*domain.Installation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("instalaciones").
		Columns(
			"id_cliente",
			"nombre",
			"descripcion",
			"ubicacion",
			"imagen_url",
			"estado",
			"id_instalador",
			"hora_solicitada",
		).
		Values(
			inst.ClientID,
			inst.Name,
			inst.Description,
			inst.Location,
			inst.ImageURL,
			inst.Status,
			inst.TechnicianID,
			inst.RequestedAt,
		).
		Suffix("RETURNING id_instalacion, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return inst, nil
}

// GetByID получает инсталляцию по ID
// В транзакции строка блокируется (FOR UPDATE), чтобы сериализовать переходы статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Installation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("instalaciones").
		Where(squirrel.Eq{"id_instalacion": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inst, err := scanInstallation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInstallationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan installation: %v", ErrScanRow, err)
	}

	return inst, nil
}

// GetByClientID получает инсталляции клиента, новые первыми
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Installation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("instalaciones").
		Where(squirrel.Eq{"id_cliente": clientID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	installations := make([]*domain.Installation, 0)
	for rows.Next() {
		inst, err := scanInstallation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClientID - scan installation: %v", ErrScanRow, err)
		}
		installations = append(installations, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - rows iteration: %v", ErrScanRow, err)
	}

	return installations, nil
}

// Assign назначает техника и переводит инсталляцию в Asignado
// Переход разрешён только из Pendiente или Asignado
func (r *Repository) Assign(ctx context.Context, id, technicianID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instalaciones").
		Set("estado", domain.InstallationAssigned).
		Set("id_instalador", technicianID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id_instalacion": id,
			"estado":         []domain.InstallationStatus{domain.InstallationPending, domain.InstallationAssigned},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "Assign", query, args)
}

// Reassign передаёт назначенную инсталляцию другому технику
// Переход разрешён только из Asignado и только от текущего техника
func (r *Repository) Reassign(ctx context.Context, id, fromTechnicianID, toTechnicianID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("instalaciones").
		Set("id_instalador", toTechnicianID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id_instalacion": id,
			"estado":         domain.InstallationAssigned,
			"id_instalador":  fromTechnicianID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reassign - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "Reassign", query, args)
}

// Complete сохраняет результат работ и переводит инсталляцию в Completado
// Переход разрешён только из Asignado
func (r *Repository) Complete(ctx context.Context, id int64, evidence domain.CompletionEvidence) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	photos, err := json.Marshal(evidence.Photos)
	if err != nil {
		return fmt.Errorf("%w: Complete - %v", ErrEncodePhotos, err)
	}

	query, args, err := psqlbuilder.Update("instalaciones").
		Set("estado", domain.InstallationCompleted).
		Set("descripcion_final", evidence.FinalDescription).
		Set("ubicacion_gps_final", evidence.GPS).
		Set("foto_adjunta", string(photos)).
		Set("fecha_completado", evidence.CompletedAt).
		Set("metodo_pago", evidence.PaymentMethod).
		Set("numero_transaccion", evidence.TransactionRef).
		Set("id_equipo_instalado", evidence.EquipmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id_instalacion": id, "estado": domain.InstallationAssigned}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execTransition(ctx, executor, "Complete", query, args)
}

// HasEquipment проверяет, привязано ли оборудование к какой-либо инсталляции
func (r *Repository) HasEquipment(ctx context.Context, equipmentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("instalaciones").
		Where(squirrel.Eq{"id_equipo_instalado": equipmentID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasEquipment - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func (r *Repository) execTransition(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err, constraintEquipment) {
		return ErrEquipmentAlreadyUsed
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

func scanInstallation(row rowScanner) (*domain.Installation, error) {
	var inst domain.Installation
	var photos sql.NullString
	var requestedAt, completedAt sql.NullTime

	err := row.Scan(
		&inst.ID,
		&inst.ClientID,
		&inst.Name,
		&inst.Description,
		&inst.Location,
		&inst.ImageURL,
		&inst.Status,
		&inst.TechnicianID,
		&requestedAt,
		&inst.FinalDescription,
		&inst.FinalGPS,
		&photos,
		&completedAt,
		&inst.PaymentMethod,
		&inst.TransactionRef,
		&inst.EquipmentID,
		&inst.CreatedAt,
		&inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if requestedAt.Valid {
		inst.RequestedAt = &requestedAt.Time
	}
	if completedAt.Valid {
		inst.CompletedAt = &completedAt.Time
	}
	if photos.Valid && photos.String != "" {
		if err := json.Unmarshal([]byte(photos.String), &inst.Photos); err != nil {
			// старые записи хранят одну ссылку без JSON
			inst.Photos = []string{photos.String}
		}
	}

	return &inst, nil
}
