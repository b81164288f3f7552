package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/transfer"
)

// Transfers репозиторий запросов передачи задач
type Transfers struct{ s *Store }

func (s *Store) Transfers() *Transfers { return &Transfers{s: s} }

func (r *Transfers) Create(_ context.Context, req *domain.TransferRequest) (*domain.TransferRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("transfers.Create"); err != nil {
		return nil, err
	}

	req.ID = r.s.id()
	req.CreatedAt = time.Now()
	r.s.data.transfers[req.ID] = *req
	out := *req
	return &out, nil
}

func (r *Transfers) GetByID(_ context.Context, id int64) (*domain.TransferRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("transfers.GetByID"); err != nil {
		return nil, err
	}

	req, ok := r.s.data.transfers[id]
	if !ok {
		return nil, transfer.ErrTransferNotFound
	}
	return &req, nil
}

func (r *Transfers) Resolve(_ context.Context, id int64, status domain.TransferStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("transfers.Resolve"); err != nil {
		return err
	}

	req, ok := r.s.data.transfers[id]
	if !ok || !req.IsPending() {
		return transfer.ErrAlreadyResolved
	}
	now := time.Now()
	req.Status = status
	req.ResolvedAt = &now
	r.s.data.transfers[id] = req
	return nil
}

func (r *Transfers) GetPendingByRecipient(_ context.Context, recipientID int64) ([]*domain.TransferRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("transfers.GetPendingByRecipient"); err != nil {
		return nil, err
	}

	out := make([]*domain.TransferRequest, 0)
	for _, req := range r.s.data.transfers {
		req := req
		if req.RecipientID == recipientID && req.IsPending() {
			out = append(out, &req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
