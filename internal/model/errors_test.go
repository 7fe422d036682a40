package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTargetError_Error includes the label so the run summary can
// report failures by name.
func TestTargetError_Error(t *testing.T) {
	err := NewTargetError("Spiral", KindNotFound, "no object with label %q", "Spiral")
	assert.Equal(t, `Spiral: no object with label "Spiral"`, err.Error())
	assert.Equal(t, KindNotFound, err.Kind)
}

// TestIsKind matches the kind through wrapping and rejects other kinds.
func TestIsKind(t *testing.T) {
	err := NewTargetError("Hub", KindCountMismatch, "color count (3) does not match face count (5)")

	assert.True(t, IsKind(err, KindCountMismatch))
	assert.False(t, IsKind(err, KindNoColorData))

	wrapped := fmt.Errorf("processing failed: %w", err)
	assert.True(t, IsKind(wrapped, KindCountMismatch))

	assert.False(t, IsKind(errors.New("plain"), KindCountMismatch))
	assert.False(t, IsKind(nil, KindCountMismatch))
}

// TestCLIError_Unwrap verifies error wrapping for errors.Is/As chains.
func TestCLIError_Unwrap(t *testing.T) {
	inner := errors.New("open snapshot.json: no such file")
	err := WrapCLIError(ExitSnapshotError, "failed to read document snapshot", inner)

	require.ErrorIs(t, err, inner)
	assert.Equal(t, ExitSnapshotError, err.Code)
	assert.Contains(t, err.Error(), "failed to read document snapshot")
	assert.Contains(t, err.Error(), "no such file")

	plain := NewCLIError(ExitConfigError, "no target labels configured")
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "no target labels configured", plain.Error())
}
