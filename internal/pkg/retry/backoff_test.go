package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	errTransient := errors.New("transient")

	tests := []struct {
		name      string
		policy    Policy
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{name: "first try", policy: Policy{Attempts: 3}, failures: 0, wantCalls: 1},
		{name: "recovers", policy: Policy{Attempts: 3, BaseDelay: time.Millisecond}, failures: 2, wantCalls: 3},
		{name: "gives up", policy: Policy{Attempts: 2, BaseDelay: time.Millisecond}, failures: 5, wantCalls: 2, wantErr: true},
		{name: "zero policy", policy: Policy{}, failures: 5, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), tt.policy, "test", func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return errTransient
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.ErrorIs(t, err, errTransient)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Do(ctx, DefaultPolicy(), "test", func(context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPolicy_Delay(t *testing.T) {
	p := Policy{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, p.delay(0))
	assert.Equal(t, 200*time.Millisecond, p.delay(1))
	assert.Equal(t, 300*time.Millisecond, p.delay(2))
}
