package resolve_transfer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/internal/usecase/request_transfer"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

type fixture struct {
	store        *memstore.Store
	request      *request_transfer.UseCase
	uc           *UseCase
	requester    *domain.User
	recipient    *domain.User
	installation *domain.Installation
	task         *domain.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	log := logger.Nop()

	f := &fixture{
		store:     store,
		request:   request_transfer.NewUseCase(store.Tasks(), store.Transfers(), store.Users(), store.TxManager(), nil, log),
		uc:        NewUseCase(store.Transfers(), store.Tasks(), store.Installations(), store.TxManager(), nil, log),
		requester: store.AddUser(domain.User{Name: "Luis"}),
		recipient: store.AddUser(domain.User{Name: "Rosa"}),
	}

	var err error
	f.installation, err = store.Installations().Create(context.Background(), &domain.Installation{
		ClientID:     1,
		Name:         "Fibra óptica",
		Status:       domain.InstallationAssigned,
		TechnicianID: ptr.Ptr(f.requester.ID),
	})
	require.NoError(t, err)
	f.task, err = store.Tasks().Create(context.Background(), &domain.Task{
		InstallationID: f.installation.ID,
		TechnicianID:   ptr.Ptr(f.requester.ID),
		Type:           "Fibra óptica",
		AssignedOn:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         domain.TaskPending,
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) open(t *testing.T) int64 {
	t.Helper()
	resp, err := f.request.Execute(context.Background(), &request_transfer.Request{
		TaskID:      f.task.ID,
		RequesterID: f.requester.ID,
		RecipientID: f.recipient.ID,
	})
	require.NoError(t, err)
	return resp.TransferID
}

func TestExecute_AcceptMovesTaskToRecipient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	transferID := f.open(t)

	resp, err := f.uc.Execute(ctx, &Request{TransferID: transferID, RecipientID: f.recipient.ID, Decision: "accept"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.TransferAccepted), resp.Status)
	assert.Equal(t, f.recipient.ID, resp.TechnicianID)

	task, err := f.store.Tasks().GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.True(t, task.IsAssignedTo(f.recipient.ID))

	stored, err := f.store.Transfers().GetByID(ctx, transferID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferAccepted, stored.Status)
	assert.NotNil(t, stored.ResolvedAt)

	inst, err := f.store.Installations().GetByID(ctx, f.installation.ID)
	require.NoError(t, err)
	assert.Equal(t, f.recipient.ID, ptr.Value(inst.TechnicianID))
	assert.Equal(t, domain.InstallationAssigned, inst.Status)
}

func TestExecute_RejectKeepsTaskWithRequester(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	transferID := f.open(t)

	resp, err := f.uc.Execute(ctx, &Request{TransferID: transferID, RecipientID: f.recipient.ID, Decision: "rechazar"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.TransferRejected), resp.Status)

	task, err := f.store.Tasks().GetByID(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.True(t, task.IsAssignedTo(f.requester.ID))

	inst, err := f.store.Installations().GetByID(ctx, f.installation.ID)
	require.NoError(t, err)
	assert.Equal(t, f.requester.ID, ptr.Value(inst.TechnicianID))
	assert.Zero(t, f.store.Calls("installations.Reassign"))
}

func TestExecute_Rejections(t *testing.T) {
	t.Run("unknown decision changes nothing", func(t *testing.T) {
		f := newFixture(t)
		transferID := f.open(t)

		_, err := f.uc.Execute(context.Background(), &Request{TransferID: transferID, RecipientID: f.recipient.ID, Decision: "maybe"})
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.Zero(t, f.store.Calls("transfers.GetByID"))

		task, err := f.store.Tasks().GetByID(context.Background(), f.task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskInTransfer, task.Status)
	})

	t.Run("not the recipient", func(t *testing.T) {
		f := newFixture(t)
		transferID := f.open(t)

		_, err := f.uc.Execute(context.Background(), &Request{TransferID: transferID, RecipientID: f.requester.ID, Decision: "accept"})
		assert.ErrorIs(t, err, ErrNotRecipient)
		assert.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := newFixture(t)
		transferID := f.open(t)
		req := &Request{TransferID: transferID, RecipientID: f.recipient.ID, Decision: "reject"}

		_, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		req.Decision = "accept"
		_, err = f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAlreadyResolved)

		task, err := f.store.Tasks().GetByID(context.Background(), f.task.ID)
		require.NoError(t, err)
		assert.True(t, task.IsAssignedTo(f.requester.ID))
	})

	t.Run("installation moved to another technician", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		transferID := f.open(t)
		other := f.store.AddUser(domain.User{Name: "Pedro"})
		require.NoError(t, f.store.Installations().Assign(ctx, f.installation.ID, other.ID))

		_, err := f.uc.Execute(ctx, &Request{TransferID: transferID, RecipientID: f.recipient.ID, Decision: "accept"})
		assert.ErrorIs(t, err, ErrInstallationStateChanged)
		assert.ErrorIs(t, err, domain.ErrConflict)

		task, err := f.store.Tasks().GetByID(ctx, f.task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskInTransfer, task.Status)
		assert.True(t, task.IsAssignedTo(f.requester.ID))

		stored, err := f.store.Transfers().GetByID(ctx, transferID)
		require.NoError(t, err)
		assert.True(t, stored.IsPending())
	})

	t.Run("unknown transfer", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(context.Background(), &Request{TransferID: 999, RecipientID: f.recipient.ID, Decision: "accept"})
		assert.ErrorIs(t, err, ErrTransferNotFound)
	})
}
