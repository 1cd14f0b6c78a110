package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		perSecond       float64
		expectUnlimited bool
	}{
		{name: "unlimited_zero", perSecond: 0, expectUnlimited: true},
		{name: "unlimited_negative", perSecond: -1, expectUnlimited: true},
		{name: "limited_one_per_second", perSecond: 1},
		{name: "limited_fractional", perSecond: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := New(tt.perSecond).Limit()
			if tt.expectUnlimited {
				if limit != 0 {
					t.Errorf("Limit() = %f, want 0", limit)
				}
				return
			}
			if limit != tt.perSecond {
				t.Errorf("Limit() = %f, want %f", limit, tt.perSecond)
			}
		})
	}
}

func TestLimiter_Wait(t *testing.T) {
	t.Run("unlimited_no_wait", func(t *testing.T) {
		limiter := New(0)

		start := time.Now()
		for range 100 {
			if err := limiter.Wait(context.Background()); err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
		}
		if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
			t.Errorf("unlimited limiter took %v", elapsed)
		}
	})

	t.Run("context_cancellation", func(t *testing.T) {
		limiter := New(1)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("first Wait() error = %v", err)
		}
		if err := limiter.Wait(ctx); err == nil {
			t.Error("second Wait() error = nil, want cancellation")
		}
	})
}

func TestThrottle(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle := NewThrottle(time.Second, start)

	steps := []struct {
		offset time.Duration
		want   bool
	}{
		{offset: 0, want: false},
		{offset: 999 * time.Millisecond, want: false},
		{offset: time.Second, want: true},
		{offset: 1500 * time.Millisecond, want: false},
		{offset: 2 * time.Second, want: true},
		{offset: 10 * time.Second, want: true},
		{offset: 10*time.Second + time.Millisecond, want: false},
	}

	for _, step := range steps {
		if got := throttle.AllowAt(start.Add(step.offset)); got != step.want {
			t.Fatalf("AllowAt(+%v) = %t, want %t", step.offset, got, step.want)
		}
	}
}

func TestThrottleReset(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle := NewThrottle(500*time.Millisecond, start)

	throttle.Reset(start.Add(400 * time.Millisecond))
	if throttle.AllowAt(start.Add(500 * time.Millisecond)) {
		t.Fatal("AllowAt() = true right after Reset")
	}
	if !throttle.AllowAt(start.Add(900 * time.Millisecond)) {
		t.Fatal("AllowAt() = false a full period after Reset")
	}
}

func TestThrottleDisabled(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, period := range []time.Duration{0, -time.Second} {
		throttle := NewThrottle(period, start)
		if throttle.AllowAt(start.Add(time.Hour)) {
			t.Fatalf("AllowAt() = true with period %v", period)
		}
		if throttle.Period() != period {
			t.Fatalf("Period() = %v, want %v", throttle.Period(), period)
		}
	}
}
