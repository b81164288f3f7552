package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
	"github.com/m04kA/SMC-FieldService/pkg/types"
)

func seedReservation(t *testing.T, store *memstore.Store, userID int64, day int, start, end string) *domain.Reservation {
	t.Helper()
	res, err := store.Reservations().Create(context.Background(), &domain.Reservation{
		InstallationID: 1,
		UserID:         userID,
		Date:           time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
	})
	require.NoError(t, err)
	return res
}

func TestCancel(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Reservations(), logger.Nop())
	ctx := context.Background()

	res := seedReservation(t, store, 7, 10, "10:00", "11:00")

	err := svc.Cancel(ctx, res.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrPermission)

	require.NoError(t, svc.Cancel(ctx, res.ID, 7))

	err = svc.Cancel(ctx, res.ID, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUserReservations_Ordered(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Reservations(), logger.Nop())

	seedReservation(t, store, 7, 11, "09:00", "10:00")
	seedReservation(t, store, 7, 10, "15:00", "16:00")
	seedReservation(t, store, 7, 10, "08:00", "09:00")
	seedReservation(t, store, 9, 10, "12:00", "13:00")

	list, err := svc.ListUserReservations(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-10", list[0].Date)
	assert.Equal(t, "08:00", list[0].StartTime)
	assert.Equal(t, "15:00", list[1].StartTime)
	assert.Equal(t, "2026-03-11", list[2].Date)
}
