package memstore

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

// Clients репозиторий клиентов
type Clients struct{ s *Store }

func (s *Store) Clients() *Clients { return &Clients{s: s} }

func (r *Clients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.Create"); err != nil {
		return nil, err
	}

	for _, existing := range r.s.data.clients {
		if existing.NationalID == c.NationalID {
			return nil, client.ErrDuplicateNationalID
		}
		if c.Code != nil && existing.Code != nil && *existing.Code == *c.Code {
			return nil, client.ErrDuplicateCode
		}
	}

	c.ID = r.s.id()
	c.CreatedAt = time.Now()
	r.s.data.clients[c.ID] = *c
	out := *c
	return &out, nil
}

func (r *Clients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.GetByID"); err != nil {
		return nil, err
	}

	c, ok := r.s.data.clients[id]
	if !ok {
		return nil, client.ErrClientNotFound
	}
	return &c, nil
}

func (r *Clients) GetByNationalID(_ context.Context, nationalID string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.GetByNationalID"); err != nil {
		return nil, err
	}

	for _, c := range r.s.data.clients {
		if c.NationalID == nationalID {
			return &c, nil
		}
	}
	return nil, client.ErrClientNotFound
}

func (r *Clients) LockCodeSequence(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.begin("clients.LockCodeSequence")
}

func (r *Clients) GetLastCodeNumber(_ context.Context, prefix string) (int, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.GetLastCodeNumber"); err != nil {
		return 0, false, err
	}

	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + "[0-9]*-")
	last, found := 0, false
	for _, c := range r.s.data.clients {
		if c.Code == nil || !re.MatchString(*c.Code) {
			continue
		}
		if n, ok := domain.ClientCodeNumber(*c.Code); ok && (!found || n > last) {
			last, found = n, true
		}
	}
	return last, found, nil
}

func (r *Clients) Search(_ context.Context, term string, limit int) ([]*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.Search"); err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	contains := func(v string) bool {
		return v != "" && strings.Contains(strings.ToLower(v), term)
	}

	out := make([]*domain.Client, 0)
	for _, c := range r.s.data.clients {
		c := c
		if contains(c.Name) || contains(c.NationalID) || contains(ptr.Value(c.Phone)) || contains(ptr.Value(c.Code)) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Clients) GetOverdue(_ context.Context, today time.Time) ([]*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.GetOverdue"); err != nil {
		return nil, err
	}

	out := make([]*domain.Client, 0)
	for _, c := range r.s.data.clients {
		c := c
		if c.PaymentState == domain.PaymentActive && c.IsOverdue(today) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Clients) UpdatePaymentState(_ context.Context, id int64, from, to domain.PaymentState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("clients.UpdatePaymentState"); err != nil {
		return err
	}

	c, ok := r.s.data.clients[id]
	if !ok || c.PaymentState != from {
		return client.ErrPaymentStateConflict
	}
	c.PaymentState = to
	r.s.data.clients[id] = c
	return nil
}
