package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/inventory"
)

// Inventory репозиторий оборудования
type Inventory struct{ s *Store }

func (s *Store) Inventory() *Inventory { return &Inventory{s: s} }

// serialTaken вызывается под s.mu
func (s *Store) serialTaken(serial string, exceptID int64) bool {
	for id, item := range s.data.items {
		if id != exceptID && item.SerialNumber == serial {
			return true
		}
	}
	return false
}

func (r *Inventory) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.Create"); err != nil {
		return nil, err
	}

	if r.s.serialTaken(item.SerialNumber, 0) {
		return nil, inventory.ErrDuplicateSerial
	}
	item.ID = r.s.id()
	r.s.data.items[item.ID] = *item
	out := *item
	return &out, nil
}

func (r *Inventory) GetByID(_ context.Context, id int64) (*domain.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.GetByID"); err != nil {
		return nil, err
	}

	item, ok := r.s.data.items[id]
	if !ok {
		return nil, inventory.ErrItemNotFound
	}
	return &item, nil
}

func (r *Inventory) GetBySerial(_ context.Context, serial string) (*domain.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.GetBySerial"); err != nil {
		return nil, err
	}

	for _, item := range r.s.data.items {
		if item.SerialNumber == serial {
			return &item, nil
		}
	}
	return nil, inventory.ErrItemNotFound
}

func (r *Inventory) List(_ context.Context, state *domain.ItemState) ([]*domain.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.List"); err != nil {
		return nil, err
	}

	out := make([]*domain.InventoryItem, 0)
	for _, item := range r.s.data.items {
		item := item
		if state == nil || item.State == *state {
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Inventory) MarkInstalled(_ context.Context, id int64, installedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.MarkInstalled"); err != nil {
		return err
	}

	item, ok := r.s.data.items[id]
	if !ok {
		return inventory.ErrItemNotFound
	}
	if !item.IsAvailable() {
		return inventory.ErrNotAvailable
	}
	item.State = domain.ItemInstalled
	item.InstalledAt = &installedAt
	r.s.data.items[id] = item
	return nil
}

func (r *Inventory) Update(_ context.Context, item *domain.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.Update"); err != nil {
		return err
	}

	existing, ok := r.s.data.items[item.ID]
	if !ok {
		return inventory.ErrItemNotFound
	}
	if r.s.serialTaken(item.SerialNumber, item.ID) {
		return inventory.ErrDuplicateSerial
	}
	existing.SerialNumber = item.SerialNumber
	existing.Model = item.Model
	existing.State = item.State
	existing.InstalledAt = item.InstalledAt
	r.s.data.items[item.ID] = existing
	return nil
}

func (r *Inventory) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("inventory.Delete"); err != nil {
		return err
	}

	if _, ok := r.s.data.items[id]; !ok {
		return inventory.ErrItemNotFound
	}
	if r.s.hasEquipment(id) {
		return inventory.ErrItemInUse
	}
	delete(r.s.data.items, id)
	return nil
}

// AddItem добавляет оборудование напрямую
func (s *Store) AddItem(item domain.InventoryItem) *domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = s.id()
	}
	s.data.items[item.ID] = item
	return &item
}
