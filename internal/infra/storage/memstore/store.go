// Package memstore хранилище в памяти с теми же контрактами и ограничениями, что и
// PostgreSQL-репозитории. Используется в тестах usecase/service слоёв.
package memstore

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

type txKey struct{}

type state struct {
	users         map[int64]domain.User
	clients       map[int64]domain.Client
	installations map[int64]domain.Installation
	tasks         map[int64]domain.Task
	transfers     map[int64]domain.TransferRequest
	reservations  map[int64]domain.Reservation
	items         map[int64]domain.InventoryItem
	nextID        int64
}

func newState() state {
	return state{
		users:         make(map[int64]domain.User),
		clients:       make(map[int64]domain.Client),
		installations: make(map[int64]domain.Installation),
		tasks:         make(map[int64]domain.Task),
		transfers:     make(map[int64]domain.TransferRequest),
		reservations:  make(map[int64]domain.Reservation),
		items:         make(map[int64]domain.InventoryItem),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.installations {
		c.installations[k] = v
	}
	for k, v := range s.tasks {
		c.tasks[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.nextID = s.nextID
	return c
}

// Store хранилище в памяти
// Транзакции сериализуются целиком, при ошибке состояние откатывается к снимку
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data state

	failures map[string]error
	calls    map[string]int
}

// New создаёт пустое хранилище
func New() *Store {
	return &Store{
		data:     newState(),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// FailOn заставляет следующий вызов операции op ("tasks.Create", "inventory.MarkInstalled", ...)
// вернуть err
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Calls сколько раз вызывалась операция
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// begin вызывается каждой операцией под s.mu
func (s *Store) begin(op string) error {
	s.calls[op]++
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		return err
	}
	return nil
}

func (s *Store) id() int64 {
	s.data.nextID++
	return s.data.nextID
}

// AddUser добавляет сотрудника
func (s *Store) AddUser(u domain.User) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.data.users[u.ID] = u
	return &u
}

// TxManager транзакции над Store
func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// TxManager реализует контракт менеджера транзакций usecase-слоя
type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	m.store.mu.Lock()
	snapshot := m.store.data.clone()
	m.store.mu.Unlock()

	rollback := func() {
		m.store.mu.Lock()
		m.store.data = snapshot
		m.store.mu.Unlock()
	}

	defer func() {
		if p := recover(); p != nil {
			rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		rollback()
		return err
	}
	return nil
}
