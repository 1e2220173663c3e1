package circuitbreaker

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_NilBreakerCallsThrough(t *testing.T) {
	got, err := Execute(nil, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, "disabled", GetState(nil))
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test-trip"))
	boom := errors.New("connection refused")

	for i := 0; i < 3; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	}

	_, err := Execute(cb, func() (int, error) { return 1, nil })
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.Equal(t, gobreaker.StateOpen.String(), GetState(cb))
}

func TestExecute_CanceledCallsDoNotTrip(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test-cancel"))

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	}

	assert.Equal(t, gobreaker.StateClosed.String(), GetState(cb))
}

func TestIsRejected(t *testing.T) {
	assert.True(t, IsRejected(gobreaker.ErrOpenState))
	assert.True(t, IsRejected(gobreaker.ErrTooManyRequests))
	assert.False(t, IsRejected(errors.New("other")))
}
