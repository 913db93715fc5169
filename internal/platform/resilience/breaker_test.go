package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream 503")

func newTestBreaker(cfg CircuitBreakerConfig) (*CircuitBreaker, *time.Time) {
	now := time.Date(2025, 9, 6, 15, 0, 0, 0, time.UTC)
	b := NewCircuitBreaker(cfg)
	b.now = func() time.Time { return now }
	return b, &now
}

func fail() error { return errUpstream }
func ok() error   { return nil }

func TestCircuitBreaker_Transitions(t *testing.T) {
	b, now := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	require.ErrorIs(t, b.Do(fail, nil), errUpstream)
	assert.Equal(t, StateClosed, b.State())

	require.ErrorIs(t, b.Do(fail, nil), errUpstream)
	assert.Equal(t, StateOpen, b.State())

	require.ErrorIs(t, b.Do(ok, nil), ErrCircuitOpen)

	*now = now.Add(6 * time.Second)
	assert.Equal(t, StateHalfOpen, b.State())

	require.NoError(t, b.Do(ok, nil))
	assert.Equal(t, StateClosed, b.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1})

	require.Error(t, b.Do(fail, nil))
	*now = now.Add(2 * time.Second)

	require.ErrorIs(t, b.Do(fail, nil), errUpstream)
	assert.Equal(t, StateOpen, b.State())
	require.ErrorIs(t, b.Do(ok, nil), ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	b, _ := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute})

	require.Error(t, b.Do(fail, nil))
	require.NoError(t, b.Do(ok, nil))
	require.Error(t, b.Do(fail, nil))
	assert.Equal(t, StateClosed, b.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	b, _ := newTestBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})

	errBadInput := errors.New("bad input")
	isFailure := func(err error) bool { return errors.Is(err, errUpstream) }

	require.ErrorIs(t, b.Do(func() error { return errBadInput }, isFailure), errBadInput)
	assert.Equal(t, StateClosed, b.State())

	require.ErrorIs(t, b.Do(fail, isFailure), errUpstream)
	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Do(func() error {
		called = true
		return nil
	}, isFailure)
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_Disabled(t *testing.T) {
	b, _ := newTestBreaker(CircuitBreakerConfig{FailureThreshold: 1})

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, b.Do(fail, nil), errUpstream)
	}
	assert.Equal(t, StateClosed, b.State())
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true})

	defaults := DefaultCircuitBreakerConfig()
	assert.Equal(t, defaults, b.cfg)
}
