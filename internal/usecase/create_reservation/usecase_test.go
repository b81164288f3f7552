package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	reservationRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/types"
)

var day = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T) (*UseCase, *memstore.Store, int64) {
	t.Helper()
	store := memstore.New()
	inst, err := store.Installations().Create(context.Background(), &domain.Installation{
		ClientID: 1,
		Name:     "Fibra óptica",
		Status:   domain.InstallationAssigned,
	})
	require.NoError(t, err)

	uc := NewUseCase(store.Reservations(), store.Installations(), store.TxManager(), nil, logger.Nop())
	return uc, store, inst.ID
}

func reserve(uc *UseCase, instID int64, date time.Time, start, end string) (*Response, error) {
	return uc.Execute(context.Background(), &Request{
		InstallationID: instID,
		UserID:         7,
		Date:           date,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
	})
}

func TestExecute_HalfOpenIntervals(t *testing.T) {
	uc, _, instID := newUseCase(t)

	_, err := reserve(uc, instID, day, "10:00", "11:00")
	require.NoError(t, err)

	_, err = reserve(uc, instID, day, "10:30", "11:30")
	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorIs(t, err, domain.ErrConflict)

	resp, err := reserve(uc, instID, day, "11:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)

	_, err = reserve(uc, instID, day, "09:00", "10:00")
	assert.NoError(t, err)

	_, err = reserve(uc, instID, day.AddDate(0, 0, 1), "10:30", "11:30")
	assert.NoError(t, err)
}

func TestExecute_DateIgnoresTimeOfDay(t *testing.T) {
	uc, _, instID := newUseCase(t)

	_, err := reserve(uc, instID, day.Add(18*time.Hour), "10:00", "11:00")
	require.NoError(t, err)

	_, err = reserve(uc, instID, day, "10:15", "10:45")
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestExecute_Validation(t *testing.T) {
	uc, store, instID := newUseCase(t)

	tests := []struct {
		name       string
		start, end string
		field      string
	}{
		{name: "end before start", start: "11:00", end: "10:00", field: "hora_fin"},
		{name: "empty interval", start: "10:00", end: "10:00", field: "hora_fin"},
		{name: "bad start", start: "25:00", end: "10:00", field: "hora_inicio"},
		{name: "missing end", start: "10:00", end: "", field: "hora_fin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reserve(uc, instID, day, tt.start, tt.end)
			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
	assert.Zero(t, store.Calls("reservations.Create"))
}

func TestExecute_UnknownInstallation(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := reserve(uc, 999, day, "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInstallationNotFound)
}

func TestExecute_ConstraintViolationIsConflict(t *testing.T) {
	uc, store, instID := newUseCase(t)
	store.FailOn("reservations.Create", reservationRepo.ErrOverlap)

	_, err := reserve(uc, instID, day, "10:00", "11:00")
	assert.ErrorIs(t, err, ErrOverlap)
}
