package create_installation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/internal/service/clients"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

type sentMessage struct {
	recipient string
	text      string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (f *fakeNotifier) Notify(recipient, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{recipient: recipient, text: text})
}

type fakeMetrics struct {
	results []string
}

func (f *fakeMetrics) ObserveOperation(operation, result string) {
	f.results = append(f.results, operation+":"+result)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	store      *memstore.Store
	uc         *UseCase
	notifier   *fakeNotifier
	metrics    *fakeMetrics
	technician *domain.User
	admin      *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	log := logger.Nop()

	registry := clients.NewService(store.Clients(), store.TxManager(), nil, nil, nil, log)
	n := &fakeNotifier{}
	m := &fakeMetrics{}

	uc := NewUseCase(registry, store.Installations(), store.Tasks(), store.Users(), store.TxManager(), n, m, log)
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	return &fixture{
		store:      store,
		uc:         uc,
		notifier:   n,
		metrics:    m,
		technician: store.AddUser(domain.User{Name: "Luis Tec", Phone: ptr.Ptr("+51999000111")}),
		admin:      store.AddUser(domain.User{Name: "Admin", IsAdmin: true}),
	}
}

func (f *fixture) request() *Request {
	return &Request{
		Name:             "Fibra óptica",
		Location:         ptr.Ptr("-12.04,-77.03"),
		ClientNationalID: "44556677",
		ClientName:       "Ana Rojas",
		ClientPhone:      ptr.Ptr("+51988777666"),
		TechnicianID:     f.technician.ID,
		AdminID:          f.admin.ID,
	}
}

func TestExecute_CreatesClientInstallationAndTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, f.request())
	require.NoError(t, err)
	assert.Equal(t, "5000-ANA-ROJAS", ptr.Value(resp.ClientCode))
	assert.Equal(t, string(domain.InstallationAssigned), resp.Status)
	assert.Equal(t, string(domain.TaskPending), resp.TaskStatus)

	inst, err := f.store.Installations().GetByID(ctx, resp.InstallationID)
	require.NoError(t, err)
	assert.Equal(t, resp.ClientID, inst.ClientID)
	assert.Equal(t, f.technician.ID, ptr.Value(inst.TechnicianID))

	task, err := f.store.Tasks().GetActiveByInstallation(ctx, resp.InstallationID)
	require.NoError(t, err)
	assert.Equal(t, resp.TaskID, task.ID)
	assert.Equal(t, "Instalación de Fibra óptica para el cliente Ana Rojas", ptr.Value(task.Description))
	assert.Equal(t, f.admin.ID, ptr.Value(task.AdminID))

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "+51999000111", f.notifier.sent[0].recipient)
	assert.Contains(t, f.notifier.sent[0].text, "Fibra óptica")
	assert.Equal(t, []string{"create_installation:ok"}, f.metrics.results)
}

func TestExecute_ReusesExistingClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, f.request())
	require.NoError(t, err)

	req := f.request()
	req.Name = "Antena"
	req.ClientName = "Otro Nombre"
	second, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)
	assert.NotEqual(t, first.InstallationID, second.InstallationID)

	client, err := f.store.Clients().GetByID(ctx, first.ClientID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Rojas", client.Name)
}

func TestExecute_IsAtomic(t *testing.T) {
	for _, op := range []string{"installations.Create", "tasks.Create", "clients.Create"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.store.FailOn(op, errors.New("connection reset"))

			_, err := f.uc.Execute(ctx, f.request())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPersistence)

			_, err = f.store.Clients().GetByNationalID(ctx, "44556677")
			assert.ErrorIs(t, err, clientRepo.ErrClientNotFound)

			active, err := f.store.Tasks().GetByTechnician(ctx, f.technician.ID, nil)
			require.NoError(t, err)
			assert.Empty(t, active)

			assert.Empty(t, f.notifier.sent)
			assert.Equal(t, []string{"create_installation:internal"}, f.metrics.results)
		})
	}
}

func TestExecute_TechnicianChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request()
	req.TechnicianID = 999
	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req = f.request()
	req.TechnicianID = f.admin.ID
	_, err = f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrNotATechnician)

	_, err = f.store.Clients().GetByNationalID(ctx, "44556677")
	assert.ErrorIs(t, err, clientRepo.ErrClientNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		field  string
	}{
		{name: "missing name", modify: func(r *Request) { r.Name = " " }, field: "nombre"},
		{name: "missing national id", modify: func(r *Request) { r.ClientNationalID = "" }, field: "dni_cliente"},
		{name: "missing client name", modify: func(r *Request) { r.ClientName = "" }, field: "nombre_cliente"},
		{name: "missing technician", modify: func(r *Request) { r.TechnicianID = 0 }, field: "tecnico_id"},
		{name: "missing admin", modify: func(r *Request) { r.AdminID = 0 }, field: "admin_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := f.request()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Zero(t, f.store.Calls("installations.Create"))
			assert.Equal(t, []string{"create_installation:validation"}, f.metrics.results)
		})
	}
}
