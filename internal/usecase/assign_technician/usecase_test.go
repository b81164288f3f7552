package assign_technician

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

type fakeNotifier struct {
	recipients []string
}

func (f *fakeNotifier) Notify(recipient, _ string) {
	f.recipients = append(f.recipients, recipient)
}

type fixture struct {
	store    *memstore.Store
	uc       *UseCase
	notifier *fakeNotifier
	first    *domain.User
	second   *domain.User
	admin    *domain.User
	inst     *domain.Installation
}

func newFixture(t *testing.T, status domain.InstallationStatus) *fixture {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()
	n := &fakeNotifier{}

	f := &fixture{
		store:    store,
		notifier: n,
		first:    store.AddUser(domain.User{Name: "Luis", Phone: ptr.Ptr("+51911")}),
		second:   store.AddUser(domain.User{Name: "Rosa", Phone: ptr.Ptr("+51922")}),
		admin:    store.AddUser(domain.User{Name: "Admin", IsAdmin: true}),
	}

	client, err := store.Clients().Create(ctx, &domain.Client{Name: "Ana Rojas", NationalID: "44556677", PaymentState: domain.PaymentActive})
	require.NoError(t, err)

	f.inst, err = store.Installations().Create(ctx, &domain.Installation{ClientID: client.ID, Name: "Antena", Status: status})
	require.NoError(t, err)

	f.uc = NewUseCase(store.Installations(), store.Tasks(), store.Clients(), store.Users(), store.TxManager(), n, nil, logger.Nop())
	return f
}

func (f *fixture) assign(techID int64) (*Response, error) {
	return f.uc.Execute(context.Background(), &Request{
		InstallationID: f.inst.ID,
		TechnicianID:   techID,
		AdminID:        f.admin.ID,
	})
}

func TestExecute_FirstAssignment(t *testing.T) {
	f := newFixture(t, domain.InstallationPending)

	resp, err := f.assign(f.first.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.SupersededTaskID)

	inst, err := f.store.Installations().GetByID(context.Background(), f.inst.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallationAssigned, inst.Status)
	assert.Equal(t, f.first.ID, ptr.Value(inst.TechnicianID))

	task, err := f.store.Tasks().GetByID(context.Background(), resp.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.Equal(t, "Instalación de Antena para el cliente Ana Rojas", ptr.Value(task.Description))
	assert.Equal(t, []string{"+51911"}, f.notifier.recipients)
}

func TestExecute_ReassignmentSupersedesPendingTask(t *testing.T) {
	f := newFixture(t, domain.InstallationPending)
	ctx := context.Background()

	first, err := f.assign(f.first.ID)
	require.NoError(t, err)

	second, err := f.assign(f.second.ID)
	require.NoError(t, err)
	require.NotNil(t, second.SupersededTaskID)
	assert.Equal(t, first.TaskID, *second.SupersededTaskID)

	old, err := f.store.Tasks().GetByID(ctx, first.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCancelled, old.Status)

	active, err := f.store.Tasks().GetActiveByInstallation(ctx, f.inst.ID)
	require.NoError(t, err)
	assert.Equal(t, second.TaskID, active.ID)
	assert.True(t, active.IsAssignedTo(f.second.ID))
}

func TestExecute_TaskInTransferBlocks(t *testing.T) {
	f := newFixture(t, domain.InstallationPending)
	ctx := context.Background()

	first, err := f.assign(f.first.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Tasks().UpdateStatus(ctx, first.TaskID, domain.TaskPending, domain.TaskInTransfer))

	_, err = f.assign(f.second.ID)
	assert.ErrorIs(t, err, ErrTransferInProgress)
	assert.ErrorIs(t, err, domain.ErrConflict)

	task, err := f.store.Tasks().GetByID(ctx, first.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInTransfer, task.Status)
	assert.Len(t, f.notifier.recipients, 1)
}

func TestExecute_Rejections(t *testing.T) {
	t.Run("completed installation", func(t *testing.T) {
		f := newFixture(t, domain.InstallationCompleted)
		_, err := f.assign(f.first.ID)
		assert.ErrorIs(t, err, ErrInstallationCompleted)
	})

	t.Run("unknown installation", func(t *testing.T) {
		f := newFixture(t, domain.InstallationPending)
		_, err := f.uc.Execute(context.Background(), &Request{InstallationID: 999, TechnicianID: f.first.ID, AdminID: f.admin.ID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin cannot be assigned", func(t *testing.T) {
		f := newFixture(t, domain.InstallationPending)
		_, err := f.assign(f.admin.ID)
		assert.ErrorIs(t, err, ErrNotATechnician)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown technician", func(t *testing.T) {
		f := newFixture(t, domain.InstallationPending)
		_, err := f.assign(999)
		assert.ErrorIs(t, err, ErrTechnicianNotFound)
	})
}

func TestExecute_RollsBackOnTaskCreateFailure(t *testing.T) {
	f := newFixture(t, domain.InstallationPending)
	ctx := context.Background()

	first, err := f.assign(f.first.ID)
	require.NoError(t, err)

	f.store.FailOn("tasks.Create", errors.New("disk full"))
	_, err = f.assign(f.second.ID)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	task, err := f.store.Tasks().GetByID(ctx, first.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)

	inst, err := f.store.Installations().GetByID(ctx, f.inst.ID)
	require.NoError(t, err)
	assert.Equal(t, f.first.ID, ptr.Value(inst.TechnicianID))
}
