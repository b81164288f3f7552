package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

const technicianID = int64(42)

func seedTask(t *testing.T, store *memstore.Store, installationID, techID int64, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task, err := store.Tasks().Create(context.Background(), &domain.Task{
		InstallationID: installationID,
		TechnicianID:   ptr.Ptr(techID),
		Type:           "Instalación",
		AssignedOn:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         status,
	})
	require.NoError(t, err)
	return task
}

func TestListTechnicianTasks(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Tasks(), store.Transfers(), logger.Nop())
	ctx := context.Background()

	pending := seedTask(t, store, 1, technicianID, domain.TaskPending)
	seedTask(t, store, 2, technicianID, domain.TaskCompleted)
	seedTask(t, store, 3, technicianID, domain.TaskInTransfer)
	seedTask(t, store, 4, 7, domain.TaskPending)

	t.Run("active by default", func(t *testing.T) {
		list, err := svc.ListTechnicianTasks(ctx, technicianID, nil)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		list, err := svc.ListTechnicianTasks(ctx, technicianID, []string{"Pendiente"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, pending.ID, list[0].ID)
		assert.Equal(t, "2026-03-10", list[0].AssignedOn)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.ListTechnicianTasks(ctx, technicianID, []string{"Perdida"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("repository failure", func(t *testing.T) {
		store.FailOn("tasks.GetByTechnician", errors.New("db down"))
		_, err := svc.ListTechnicianTasks(ctx, technicianID, nil)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func TestTechnicianStats(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Tasks(), store.Transfers(), logger.Nop())

	seedTask(t, store, 1, technicianID, domain.TaskPending)
	seedTask(t, store, 2, technicianID, domain.TaskAvailable)
	seedTask(t, store, 3, technicianID, domain.TaskCompleted)
	seedTask(t, store, 4, technicianID, domain.TaskCompleted)
	seedTask(t, store, 5, technicianID, domain.TaskInTransfer)
	seedTask(t, store, 6, technicianID, domain.TaskCancelled)

	stats, err := svc.TechnicianStats(context.Background(), technicianID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.InTransfer)
}

func TestListIncomingTransfers(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Tasks(), store.Transfers(), logger.Nop())
	ctx := context.Background()

	open, err := store.Transfers().Create(ctx, &domain.TransferRequest{TaskID: 1, RequesterID: 7, RecipientID: technicianID, Status: domain.TransferPending})
	require.NoError(t, err)
	closed, err := store.Transfers().Create(ctx, &domain.TransferRequest{TaskID: 2, RequesterID: 7, RecipientID: technicianID, Status: domain.TransferPending})
	require.NoError(t, err)
	require.NoError(t, store.Transfers().Resolve(ctx, closed.ID, domain.TransferRejected))

	list, err := svc.ListIncomingTransfers(ctx, technicianID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, open.ID, list[0].ID)
	assert.Equal(t, int64(7), list[0].RequesterID)
}
