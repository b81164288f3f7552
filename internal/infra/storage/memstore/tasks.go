package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/task"
)

// Tasks репозиторий задач
type Tasks struct{ s *Store }

func (s *Store) Tasks() *Tasks { return &Tasks{s: s} }

// activeTaskExists вызывается под s.mu
func (s *Store) activeTaskExists(installationID, exceptID int64) bool {
	for id, t := range s.data.tasks {
		if id != exceptID && t.InstallationID == installationID && t.IsActive() {
			return true
		}
	}
	return false
}

func (r *Tasks) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.Create"); err != nil {
		return nil, err
	}

	if t.IsActive() && r.s.activeTaskExists(t.InstallationID, 0) {
		return nil, task.ErrActiveTaskExists
	}

	t.ID = r.s.id()
	t.CreatedAt = time.Now()
	r.s.data.tasks[t.ID] = *t
	out := *t
	return &out, nil
}

func (r *Tasks) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.GetByID"); err != nil {
		return nil, err
	}

	t, ok := r.s.data.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return &t, nil
}

func (r *Tasks) GetActiveByInstallation(_ context.Context, installationID int64) (*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.GetActiveByInstallation"); err != nil {
		return nil, err
	}

	for _, t := range r.s.data.tasks {
		if t.InstallationID == installationID && t.IsActive() {
			return &t, nil
		}
	}
	return nil, task.ErrTaskNotFound
}

func (r *Tasks) UpdateStatus(_ context.Context, id int64, from, to domain.TaskStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.UpdateStatus"); err != nil {
		return err
	}

	t, ok := r.s.data.tasks[id]
	if !ok || t.Status != from {
		return task.ErrStatusConflict
	}
	t.Status = to
	if t.IsActive() && r.s.activeTaskExists(t.InstallationID, id) {
		return task.ErrActiveTaskExists
	}
	r.s.data.tasks[id] = t
	return nil
}

func (r *Tasks) Reassign(_ context.Context, id, fromTechnicianID, toTechnicianID int64, from, to domain.TaskStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.Reassign"); err != nil {
		return err
	}

	t, ok := r.s.data.tasks[id]
	if !ok || t.Status != from || !t.IsAssignedTo(fromTechnicianID) {
		return task.ErrStatusConflict
	}
	t.Status = to
	t.TechnicianID = &toTechnicianID
	r.s.data.tasks[id] = t
	return nil
}

func (r *Tasks) GetByTechnician(_ context.Context, technicianID int64, statuses []domain.TaskStatus) ([]*domain.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.GetByTechnician"); err != nil {
		return nil, err
	}

	out := make([]*domain.Task, 0)
	for _, t := range r.s.data.tasks {
		t := t
		if !t.IsAssignedTo(technicianID) || !statusIn(t.Status, statuses) {
			continue
		}
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Tasks) CountByTechnician(_ context.Context, technicianID int64) (map[domain.TaskStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("tasks.CountByTechnician"); err != nil {
		return nil, err
	}

	counts := make(map[domain.TaskStatus]int)
	for _, t := range r.s.data.tasks {
		if t.IsAssignedTo(technicianID) {
			counts[t.Status]++
		}
	}
	return counts, nil
}

func statusIn(s domain.TaskStatus, statuses []domain.TaskStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
