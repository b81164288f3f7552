package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

func TestTask_IsActive(t *testing.T) {
	for _, s := range []TaskStatus{TaskPending, TaskAvailable, TaskInTransfer} {
		assert.True(t, (&Task{Status: s}).IsActive(), s)
	}
	for _, s := range []TaskStatus{TaskCompleted, TaskCancelled} {
		assert.False(t, (&Task{Status: s}).IsActive(), s)
	}
}

func TestTask_IsAssignedTo(t *testing.T) {
	task := &Task{TechnicianID: ptr.Ptr(int64(7))}
	assert.True(t, task.IsAssignedTo(7))
	assert.False(t, task.IsAssignedTo(8))
	assert.False(t, (&Task{}).IsAssignedTo(7))
}

func TestParseTransferDecision(t *testing.T) {
	d, err := ParseTransferDecision("aceptar")
	require.NoError(t, err)
	assert.Equal(t, DecisionAccept, d)
	assert.Equal(t, TransferAccepted, d.ResultStatus())

	d, err = ParseTransferDecision(" Reject ")
	require.NoError(t, err)
	assert.Equal(t, TransferRejected, d.ResultStatus())

	_, err = ParseTransferDecision("maybe")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestFieldError(t *testing.T) {
	err := error(NewFieldError("photos", "at least one photo is required"))

	assert.True(t, errors.Is(err, ErrValidation))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "photos", fe.Field)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "ok", Category(nil))
	assert.Equal(t, "validation", Category(NewFieldError("gps", "missing longitude")))
	assert.Equal(t, "conflict", Category(fmt.Errorf("%w: item already installed", ErrConflict)))
	assert.Equal(t, "not_found", Category(fmt.Errorf("wrap: %w", ErrNotFound)))
	assert.Equal(t, "internal", Category(errors.New("boom")))
}

func TestParseTaskStatus(t *testing.T) {
	status, err := ParseTaskStatus("En Traspaso")
	require.NoError(t, err)
	assert.Equal(t, TaskInTransfer, status)

	_, err = ParseTaskStatus("Asignada")
	assert.ErrorIs(t, err, ErrValidation)
}
