package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/reservation"
)

// Reservations репозиторий резервов
type Reservations struct{ s *Store }

func (s *Store) Reservations() *Reservations { return &Reservations{s: s} }

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func (r *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("reservations.Create"); err != nil {
		return nil, err
	}

	for _, existing := range r.s.data.reservations {
		if existing.InstallationID == res.InstallationID && sameDay(existing.Date, res.Date) &&
			existing.Overlaps(res.StartTime, res.EndTime) {
			return nil, reservation.ErrOverlap
		}
	}

	res.ID = r.s.id()
	res.CreatedAt = time.Now()
	r.s.data.reservations[res.ID] = *res
	out := *res
	return &out, nil
}

func (r *Reservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("reservations.GetByID"); err != nil {
		return nil, err
	}

	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return &res, nil
}

func (r *Reservations) GetByInstallationAndDate(_ context.Context, installationID int64, date time.Time) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("reservations.GetByInstallationAndDate"); err != nil {
		return nil, err
	}

	out := make([]*domain.Reservation, 0)
	for _, res := range r.s.data.reservations {
		res := res
		if res.InstallationID == installationID && sameDay(res.Date, date) {
			out = append(out, &res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.IsBefore(out[j].StartTime) })
	return out, nil
}

func (r *Reservations) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("reservations.GetByUserID"); err != nil {
		return nil, err
	}

	out := make([]*domain.Reservation, 0)
	for _, res := range r.s.data.reservations {
		res := res
		if res.UserID == userID {
			out = append(out, &res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !sameDay(out[i].Date, out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})
	return out, nil
}

func (r *Reservations) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("reservations.Delete"); err != nil {
		return err
	}

	if _, ok := r.s.data.reservations[id]; !ok {
		return reservation.ErrReservationNotFound
	}
	delete(r.s.data.reservations, id)
	return nil
}
