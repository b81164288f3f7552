package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/installation"
)

// Installations репозиторий инсталляций
type Installations struct{ s *Store }

func (s *Store) Installations() *Installations { return &Installations{s: s} }

func (r *Installations) Create(_ context.Context, inst *domain.Installation) (*domain.Installation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.Create"); err != nil {
		return nil, err
	}

	inst.ID = r.s.id()
	inst.CreatedAt = time.Now()
	inst.UpdatedAt = inst.CreatedAt
	r.s.data.installations[inst.ID] = *inst
	out := *inst
	return &out, nil
}

func (r *Installations) GetByID(_ context.Context, id int64) (*domain.Installation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.GetByID"); err != nil {
		return nil, err
	}

	inst, ok := r.s.data.installations[id]
	if !ok {
		return nil, installation.ErrInstallationNotFound
	}
	return &inst, nil
}

func (r *Installations) GetByClientID(_ context.Context, clientID int64) ([]*domain.Installation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.GetByClientID"); err != nil {
		return nil, err
	}

	out := make([]*domain.Installation, 0)
	for _, inst := range r.s.data.installations {
		inst := inst
		if inst.ClientID == clientID {
			out = append(out, &inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Installations) Assign(_ context.Context, id, technicianID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.Assign"); err != nil {
		return err
	}

	inst, ok := r.s.data.installations[id]
	if !ok || !inst.CanBeAssigned() {
		return installation.ErrStatusConflict
	}
	inst.Status = domain.InstallationAssigned
	inst.TechnicianID = &technicianID
	inst.UpdatedAt = time.Now()
	r.s.data.installations[id] = inst
	return nil
}

func (r *Installations) Reassign(_ context.Context, id, fromTechnicianID, toTechnicianID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.Reassign"); err != nil {
		return err
	}

	inst, ok := r.s.data.installations[id]
	if !ok || inst.Status != domain.InstallationAssigned ||
		inst.TechnicianID == nil || *inst.TechnicianID != fromTechnicianID {
		return installation.ErrStatusConflict
	}
	inst.TechnicianID = &toTechnicianID
	inst.UpdatedAt = time.Now()
	r.s.data.installations[id] = inst
	return nil
}

func (r *Installations) Complete(_ context.Context, id int64, evidence domain.CompletionEvidence) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.Complete"); err != nil {
		return err
	}

	for otherID, other := range r.s.data.installations {
		if otherID != id && other.EquipmentID != nil && *other.EquipmentID == evidence.EquipmentID {
			return installation.ErrEquipmentAlreadyUsed
		}
	}

	inst, ok := r.s.data.installations[id]
	if !ok || inst.Status != domain.InstallationAssigned {
		return installation.ErrStatusConflict
	}

	gps := evidence.GPS
	completedAt := evidence.CompletedAt
	equipmentID := evidence.EquipmentID
	inst.Status = domain.InstallationCompleted
	inst.FinalDescription = evidence.FinalDescription
	inst.FinalGPS = &gps
	inst.Photos = append([]string(nil), evidence.Photos...)
	inst.CompletedAt = &completedAt
	inst.PaymentMethod = evidence.PaymentMethod
	inst.TransactionRef = evidence.TransactionRef
	inst.EquipmentID = &equipmentID
	inst.UpdatedAt = time.Now()
	r.s.data.installations[id] = inst
	return nil
}

func (r *Installations) HasEquipment(_ context.Context, equipmentID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.begin("installations.HasEquipment"); err != nil {
		return false, err
	}
	return r.s.hasEquipment(equipmentID), nil
}

// hasEquipment вызывается под s.mu
func (s *Store) hasEquipment(equipmentID int64) bool {
	for _, inst := range s.data.installations {
		if inst.EquipmentID != nil && *inst.EquipmentID == equipmentID {
			return true
		}
	}
	return false
}
