package retryx

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConstantRetry(t *testing.T) {
	t.Run("should succeed on first attempt", func(t *testing.T) {
		calls := 0
		err := ConstantRetry(func() error {
			calls++
			return nil
		}, WithInitialDuration(time.Millisecond))
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop after the configured retry count", func(t *testing.T) {
		calls := 0
		err := ConstantRetry(func() error {
			calls++
			return errors.New("nope")
		}, WithInitialDuration(time.Millisecond), WithRetryCount(4))
		assert.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("should recover before exhausting retries", func(t *testing.T) {
		calls := 0
		err := ConstantRetry(func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		}, WithInitialDuration(time.Millisecond), WithRetryCount(5))
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})
}

func TestExponentialRetry(t *testing.T) {
	t.Run("should stop after the configured retry count", func(t *testing.T) {
		calls := 0
		err := ExponentialRetry(func() error {
			calls++
			return errors.New("nope")
		}, WithInitialDuration(time.Millisecond), WithMaxInterval(2*time.Millisecond), WithRetryCount(3))
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}
