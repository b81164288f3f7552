package complete_installation

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

type fakeNotifier struct {
	recipients []string
	texts      []string
}

func (f *fakeNotifier) Notify(recipient, text string) {
	f.recipients = append(f.recipients, recipient)
	f.texts = append(f.texts, text)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 3, 12, 16, 45, 0, 0, time.UTC)

type fixture struct {
	store      *memstore.Store
	uc         *UseCase
	notifier   *fakeNotifier
	technician *domain.User
	other      *domain.User
	client     *domain.Client
	item       *domain.InventoryItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()
	n := &fakeNotifier{}

	f := &fixture{
		store:      store,
		notifier:   n,
		technician: store.AddUser(domain.User{Name: "Luis"}),
		other:      store.AddUser(domain.User{Name: "Rosa"}),
		item: store.AddItem(domain.InventoryItem{
			SerialNumber: "ZTE-100",
			Model:        "F660",
			State:        domain.ItemAvailable,
			ReceivedOn:   testNow.AddDate(0, 0, -5),
		}),
	}

	var err error
	f.client, err = store.Clients().Create(ctx, &domain.Client{
		Name:         "Ana Rojas",
		NationalID:   "44556677",
		Phone:        ptr.Ptr("+51988777666"),
		PaymentState: domain.PaymentActive,
	})
	require.NoError(t, err)

	f.uc = NewUseCase(store.Installations(), store.Tasks(), store.Inventory(), store.Clients(), store.TxManager(), n, nil, logger.Nop())
	f.uc.timeProvider = fixedTime{now: testNow}
	return f
}

// assigned создаёт инсталляцию в Asignado с задачей в статусе status
func (f *fixture) assigned(t *testing.T, status domain.TaskStatus) (*domain.Installation, *domain.Task) {
	t.Helper()
	ctx := context.Background()
	inst, err := f.store.Installations().Create(ctx, &domain.Installation{
		ClientID:     f.client.ID,
		Name:         "Fibra óptica",
		Status:       domain.InstallationAssigned,
		TechnicianID: ptr.Ptr(f.technician.ID),
	})
	require.NoError(t, err)
	task, err := f.store.Tasks().Create(ctx, &domain.Task{
		InstallationID: inst.ID,
		TechnicianID:   ptr.Ptr(f.technician.ID),
		Type:           inst.Name,
		AssignedOn:     testNow,
		Status:         status,
	})
	require.NoError(t, err)
	return inst, task
}

func (f *fixture) request(instID int64) *Request {
	return &Request{
		InstallationID:   instID,
		TechnicianID:     f.technician.ID,
		EquipmentID:      f.item.ID,
		Photos:           []string{"https://cdn.example/p1.jpg", " "},
		Latitude:         "-12.0464",
		Longitude:        "-77.0428",
		FinalDescription: ptr.Ptr("Instalado en sala"),
		PaymentMethod:    ptr.Ptr("Yape"),
	}
}

func TestExecute_Completes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inst, task := f.assigned(t, domain.TaskPending)

	resp, err := f.uc.Execute(ctx, f.request(inst.ID))
	require.NoError(t, err)
	assert.Equal(t, "-12.0464,-77.0428", resp.GPS)
	assert.Equal(t, task.ID, resp.TaskID)

	stored, err := f.store.Installations().GetByID(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallationCompleted, stored.Status)
	assert.Equal(t, []string{"https://cdn.example/p1.jpg"}, stored.Photos)
	assert.Equal(t, f.item.ID, ptr.Value(stored.EquipmentID))
	assert.Equal(t, "Yape", ptr.Value(stored.PaymentMethod))

	item, err := f.store.Inventory().GetByID(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemInstalled, item.State)
	require.NotNil(t, item.InstalledAt)
	assert.True(t, item.InstalledAt.Equal(testNow))

	storedTask, err := f.store.Tasks().GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, storedTask.Status)

	require.Len(t, f.notifier.recipients, 1)
	assert.Equal(t, "+51988777666", f.notifier.recipients[0])
	assert.Contains(t, f.notifier.texts[0], "Ana Rojas")
	assert.Contains(t, f.notifier.texts[0], "2026-03-12 16:45:00")
}

func TestExecute_ValidationBeforeWrites(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		field  string
	}{
		{name: "no equipment", modify: func(r *Request) { r.EquipmentID = 0 }, field: "equipo_id"},
		{name: "no photos", modify: func(r *Request) { r.Photos = nil }, field: "fotos"},
		{name: "blank photos", modify: func(r *Request) { r.Photos = []string{"", "  "} }, field: "fotos"},
		{name: "latitude only", modify: func(r *Request) { r.Longitude = "" }, field: "longitud"},
		{name: "longitude only", modify: func(r *Request) { r.Latitude = "" }, field: "latitud"},
		{name: "non numeric", modify: func(r *Request) { r.Latitude = "norte" }, field: "latitud"},
		{name: "out of range", modify: func(r *Request) { r.Longitude = "190" }, field: "longitud"},
		{name: "not a number", modify: func(r *Request) { r.Latitude = "NaN" }, field: "latitud"},
		{name: "infinite", modify: func(r *Request) { r.Longitude = "-Inf" }, field: "longitud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			inst, _ := f.assigned(t, domain.TaskPending)
			req := f.request(inst.ID)
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Zero(t, f.store.Calls("inventory.MarkInstalled"))
			assert.Zero(t, f.store.Calls("installations.Complete"))
		})
	}
}

func TestExecute_TaskPreconditions(t *testing.T) {
	t.Run("other technician", func(t *testing.T) {
		f := newFixture(t)
		inst, _ := f.assigned(t, domain.TaskPending)
		req := f.request(inst.ID)
		req.TechnicianID = f.other.ID

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotAssigned)
		assert.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("task in transfer", func(t *testing.T) {
		f := newFixture(t)
		inst, _ := f.assigned(t, domain.TaskInTransfer)

		_, err := f.uc.Execute(context.Background(), f.request(inst.ID))
		assert.ErrorIs(t, err, ErrTaskNotPending)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("no active task", func(t *testing.T) {
		f := newFixture(t)
		inst, err := f.store.Installations().Create(context.Background(), &domain.Installation{
			ClientID: f.client.ID, Name: "Antena", Status: domain.InstallationPending,
		})
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), f.request(inst.ID))
		assert.ErrorIs(t, err, ErrNoActiveTask)
	})

	t.Run("unknown installation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(context.Background(), f.request(999))
		assert.ErrorIs(t, err, ErrInstallationNotFound)
	})
}

func TestExecute_EquipmentIsConsumedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, _ := f.assigned(t, domain.TaskPending)
	second, secondTask := f.assigned(t, domain.TaskPending)

	_, err := f.uc.Execute(ctx, f.request(first.ID))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(second.ID))
	assert.ErrorIs(t, err, ErrEquipmentNotAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := f.store.Installations().GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallationAssigned, stored.Status)

	task, err := f.store.Tasks().GetByID(ctx, secondTask.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
}

func TestExecute_UnknownEquipment(t *testing.T) {
	f := newFixture(t)
	inst, _ := f.assigned(t, domain.TaskPending)
	req := f.request(inst.ID)
	req.EquipmentID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_IsAtomic(t *testing.T) {
	for _, op := range []string{"installations.Complete", "tasks.UpdateStatus"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			inst, task := f.assigned(t, domain.TaskPending)
			f.store.FailOn(op, errors.New("connection reset"))

			_, err := f.uc.Execute(ctx, f.request(inst.ID))
			assert.ErrorIs(t, err, domain.ErrPersistence)

			item, err := f.store.Inventory().GetByID(ctx, f.item.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.ItemAvailable, item.State)
			assert.Nil(t, item.InstalledAt)

			stored, err := f.store.Installations().GetByID(ctx, inst.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.InstallationAssigned, stored.Status)

			storedTask, err := f.store.Tasks().GetByID(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.TaskPending, storedTask.Status)

			assert.Empty(t, f.notifier.recipients)
		})
	}
}
