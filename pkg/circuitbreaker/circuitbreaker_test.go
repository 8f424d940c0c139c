package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink unavailable")

func newTestBreaker(timeout time.Duration, trip uint32) *CircuitBreaker {
	return NewCircuitBreaker("events-test", Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: ConsecutiveFailures(trip),
	})
}

func fail() error    { return errSink }
func succeed() error { return nil }

func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := newTestBreaker(30*time.Second, 5)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := newTestBreaker(30*time.Second, 5)

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errSink)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.True(t, IsRejection(err))
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(30*time.Second, 3)

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	_ = cb.Execute(succeed)
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	t.Run("探测成功转为CLOSED", func(t *testing.T) {
		cb := newTestBreaker(50*time.Millisecond, 2)
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)
		require.Equal(t, StateOpen, cb.State())

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, StateHalfOpen, cb.State())

		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败转回OPEN", func(t *testing.T) {
		cb := newTestBreaker(50*time.Millisecond, 2)
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)

		time.Sleep(80 * time.Millisecond)
		_ = cb.Execute(fail)
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	cb := newTestBreaker(50*time.Millisecond, 1)
	_ = cb.Execute(fail)
	time.Sleep(80 * time.Millisecond)

	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- cb.Execute(func() error {
			<-release
			return nil
		})
	}()

	// 等待第一个探测请求占用名额
	require.Eventually(t, func() bool { return cb.Counts().Requests == 1 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, cb.Execute(succeed), ErrTooManyRequests)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Panic(t *testing.T) {
	boom := func() error { panic("sink crashed") }

	t.Run("CLOSED状态panic计为失败", func(t *testing.T) {
		cb := newTestBreaker(30*time.Second, 2)
		assert.PanicsWithValue(t, "sink crashed", func() { _ = cb.Execute(boom) })
		assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)

		assert.Panics(t, func() { _ = cb.Execute(boom) })
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("半开探测panic不占用名额", func(t *testing.T) {
		cb := newTestBreaker(50*time.Millisecond, 1)
		_ = cb.Execute(fail)
		time.Sleep(80 * time.Millisecond)
		require.Equal(t, StateHalfOpen, cb.State())

		assert.Panics(t, func() { _ = cb.Execute(boom) })
		assert.Equal(t, StateOpen, cb.State(), "panic视为探测失败")

		time.Sleep(80 * time.Millisecond)
		require.NoError(t, cb.Execute(succeed), "超时后允许新的探测")
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	var changes []string
	cb := NewCircuitBreaker("events-test", Config{
		Interval:    10 * time.Second,
		Timeout:     50 * time.Millisecond,
		ReadyToTrip: ConsecutiveFailures(3),
		OnStateChange: func(name string, from State, to State) {
			changes = append(changes, from.String()+"->"+to.String())
		},
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(fail)
	}
	time.Sleep(80 * time.Millisecond)
	_ = cb.Execute(succeed)

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, changes)
}

func TestCircuitBreaker_FailureRate(t *testing.T) {
	cb := NewCircuitBreaker("events-test", Config{
		Interval: time.Hour,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.Requests >= 10 && counts.FailureRate() > 0.5
		},
	})

	// 4次成功,6次失败
	for i := 0; i < 10; i++ {
		if i < 4 {
			_ = cb.Execute(succeed)
		} else {
			_ = cb.Execute(fail)
		}
	}

	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker("defaults", Config{Timeout: time.Minute})
	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	assert.Equal(t, StateClosed, cb.State())

	_ = cb.Execute(fail)
	assert.Equal(t, StateOpen, cb.State())
	assert.Equal(t, "defaults", cb.Name())
}

func BenchmarkCircuitBreaker(b *testing.B) {
	cb := newTestBreaker(30*time.Second, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(succeed)
	}
}
