package inventory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/pkg/pgerrors"
)

// execRecorder запоминает последний запрос и отвечает заданным результатом
type execRecorder struct {
	query string
	args  []interface{}
	rows  int64
	err   error
}

func (e *execRecorder) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query, e.args = query, args
	if e.err != nil {
		return nil, e.err
	}
	return driver.RowsAffected(e.rows), nil
}

func (e *execRecorder) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (e *execRecorder) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("unexpected query row")
}

func (e *execRecorder) where(t *testing.T) string {
	t.Helper()
	parts := strings.SplitN(e.query, " WHERE ", 2)
	require.Len(t, parts, 2, e.query)
	return parts[1]
}

func TestMarkInstalled_OnlyAvailableItems(t *testing.T) {
	db := &execRecorder{rows: 1}
	repo := NewRepository(db)
	installedAt := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, repo.MarkInstalled(context.Background(), 9, installedAt))

	where := db.where(t)
	assert.Contains(t, where, "estado = $")
	assert.Contains(t, where, "id_equipo = $")
	assert.ElementsMatch(t, []interface{}{domain.ItemInstalled, installedAt, domain.ItemAvailable, int64(9)}, db.args)
}

func TestUpdateAndDelete_ConstraintMapping(t *testing.T) {
	item := &domain.InventoryItem{ID: 9, SerialNumber: "ZTE-001", Model: "F660", State: domain.ItemAvailable}

	db := &execRecorder{err: &pq.Error{Code: pgerrors.CodeUniqueViolation, Constraint: constraintSerial}}
	repo := NewRepository(db)
	assert.ErrorIs(t, repo.Update(context.Background(), item), ErrDuplicateSerial)

	db.err = &pq.Error{Code: pgerrors.CodeForeignKeyViolation, Constraint: "instalaciones_id_equipo_instalado_fkey"}
	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrItemInUse)

	db.err = nil
	db.rows = 0
	assert.ErrorIs(t, repo.Update(context.Background(), item), ErrItemNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrItemNotFound)

	db.rows = 1
	require.NoError(t, repo.Delete(context.Background(), 9))
	assert.Equal(t, "DELETE FROM inventario WHERE id_equipo = $1", db.query)
}
