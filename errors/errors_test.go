package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewAppError(ErrCodeDBError, "Không kết nối được database", inner)

	assert.True(t, IsAppError(err))
	assert.ErrorIs(t, err, inner)

	got := GetAppError(err)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeDBError, got.Code)
}

func TestAppError_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup booking: %w", NewAppError(ErrCodeBookingNotFound, "Không tìm thấy booking", nil))

	assert.True(t, IsAppError(err))
	got := GetAppError(err)
	require.NotNil(t, got)
	assert.Equal(t, ErrCodeBookingNotFound, got.Code)
}

func TestGetAppError_PlainError(t *testing.T) {
	assert.False(t, IsAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestIsInvalidTransition(t *testing.T) {
	err := &InvalidTransitionError{From: "CHECKED_OUT", To: "CANCELLED"}
	assert.True(t, IsInvalidTransition(err))
	assert.True(t, IsInvalidTransition(fmt.Errorf("transition: %w", err)))
	assert.False(t, IsInvalidTransition(ErrRoomUnavailable))
	assert.Contains(t, err.Error(), "CHECKED_OUT")
}
