package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestService(store *memstore.Store) *Service {
	svc := NewService(store.Inventory(), store.Installations(), store.TxManager(), logger.Nop())
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

// linkItem создаёт завершённую инсталляцию, использующую оборудование
func linkItem(t *testing.T, store *memstore.Store, itemID int64) {
	t.Helper()
	ctx := context.Background()
	inst, err := store.Installations().Create(ctx, &domain.Installation{
		ClientID: 1,
		Name:     "Fibra óptica",
		Status:   domain.InstallationPending,
	})
	require.NoError(t, err)
	require.NoError(t, store.Installations().Assign(ctx, inst.ID, 2))
	require.NoError(t, store.Inventory().MarkInstalled(ctx, itemID, testNow))
	require.NoError(t, store.Installations().Complete(ctx, inst.ID, domain.CompletionEvidence{
		GPS:         "-12.04,-77.03",
		Photos:      []string{"a.jpg"},
		CompletedAt: testNow,
		EquipmentID: itemID,
	}))
}

func TestAddItem(t *testing.T) {
	store := memstore.New()
	svc := newTestService(store)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, models.AddItemRequest{SerialNumber: " ZTE-001 ", Model: "F660"})
	require.NoError(t, err)
	assert.Equal(t, "ZTE-001", item.SerialNumber)
	assert.Equal(t, string(domain.ItemAvailable), item.State)
	assert.Equal(t, "2026-03-10", item.ReceivedOn)
	assert.Nil(t, item.InstalledAt)

	_, err = svc.AddItem(ctx, models.AddItemRequest{SerialNumber: "ZTE-001", Model: "F670"})
	assert.ErrorIs(t, err, ErrDuplicateSerial)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddItem_Validation(t *testing.T) {
	svc := newTestService(memstore.New())

	tests := []struct {
		name  string
		req   models.AddItemRequest
		field string
	}{
		{name: "missing serial", req: models.AddItemRequest{Model: "F660"}, field: "numero_serie"},
		{name: "blank model", req: models.AddItemRequest{SerialNumber: "X1", Model: "  "}, field: "modelo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(context.Background(), tt.req)
			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestUpdateItem(t *testing.T) {
	store := memstore.New()
	svc := newTestService(store)
	ctx := context.Background()

	item := store.AddItem(domain.InventoryItem{SerialNumber: "S1", Model: "F660", State: domain.ItemAvailable, ReceivedOn: testNow})

	t.Run("marking installed sets the installation date", func(t *testing.T) {
		resp, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{SerialNumber: "S1", Model: "F670", State: "Instalado"})
		require.NoError(t, err)
		assert.Equal(t, "F670", resp.Model)
		require.NotNil(t, resp.InstalledAt)
		assert.True(t, resp.InstalledAt.Equal(testNow))
	})

	t.Run("unlinked item can return to available", func(t *testing.T) {
		resp, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{SerialNumber: "S1", Model: "F670", State: "Disponible"})
		require.NoError(t, err)
		assert.Equal(t, "Disponible", resp.State)
		assert.Nil(t, resp.InstalledAt)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{SerialNumber: "S1", Model: "F670", State: "Roto"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, 999, models.UpdateItemRequest{SerialNumber: "S1", Model: "F670", State: "Disponible"})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestUpdateItem_LinkedItemStaysInstalled(t *testing.T) {
	store := memstore.New()
	svc := newTestService(store)
	ctx := context.Background()

	item := store.AddItem(domain.InventoryItem{SerialNumber: "S2", Model: "F660", State: domain.ItemAvailable, ReceivedOn: testNow})
	linkItem(t, store, item.ID)

	_, err := svc.UpdateItem(ctx, item.ID, models.UpdateItemRequest{SerialNumber: "S2", Model: "F660", State: "Disponible"})
	assert.ErrorIs(t, err, ErrItemLinked)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := store.Inventory().GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemInstalled, stored.State)
}

func TestDeleteItem(t *testing.T) {
	store := memstore.New()
	svc := newTestService(store)
	ctx := context.Background()

	free := store.AddItem(domain.InventoryItem{SerialNumber: "S3", Model: "F660", State: domain.ItemAvailable, ReceivedOn: testNow})
	used := store.AddItem(domain.InventoryItem{SerialNumber: "S4", Model: "F660", State: domain.ItemAvailable, ReceivedOn: testNow})
	linkItem(t, store, used.ID)

	require.NoError(t, svc.DeleteItem(ctx, free.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, free.ID), ErrItemNotFound)
	assert.ErrorIs(t, svc.DeleteItem(ctx, used.ID), ErrItemLinked)
}

func TestListAvailableAndGetBySerial(t *testing.T) {
	store := memstore.New()
	svc := newTestService(store)
	ctx := context.Background()

	store.AddItem(domain.InventoryItem{SerialNumber: "A", Model: "F660", State: domain.ItemAvailable, ReceivedOn: testNow})
	installed := store.AddItem(domain.InventoryItem{SerialNumber: "B", Model: "F660", State: domain.ItemInstalled, ReceivedOn: testNow})

	list, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].SerialNumber)

	got, err := svc.GetBySerial(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, installed.ID, got.ID)

	_, err = svc.GetBySerial(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
