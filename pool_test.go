package mdsite

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		check   func(int) bool
	}{
		{
			name:    "explicit value wins",
			workers: 5,
			check:   func(n int) bool { return n == 5 },
		},
		{
			name:    "explicit above cap is kept",
			workers: 20,
			check:   func(n int) bool { return n == 20 },
		},
		{
			name:    "zero auto-sizes within bounds",
			workers: 0,
			check:   func(n int) bool { return n >= MinWorkers && n <= MaxWorkers },
		},
		{
			name:    "negative auto-sizes within bounds",
			workers: -1,
			check:   func(n int) bool { return n >= MinWorkers && n <= MaxWorkers },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveWorkers(tt.workers)
			if !tt.check(got) {
				t.Errorf("ResolveWorkers(%d) = %d, out of expected range", tt.workers, got)
			}
		})
	}
}

func TestRunPool(t *testing.T) {
	t.Parallel()

	t.Run("runs every job exactly once", func(t *testing.T) {
		t.Parallel()

		const n = 50
		var ran [n]atomic.Int32
		err := runPool(context.Background(), 4, n, func(i int) error {
			ran[i].Add(1)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range ran {
			if got := ran[i].Load(); got != 1 {
				t.Errorf("job %d ran %d times, want 1", i, got)
			}
		}
	})

	t.Run("collects errors from failing jobs", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		err := runPool(context.Background(), 2, 4, func(i int) error {
			if i == 2 {
				return boom
			}
			return nil
		})
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want %v", err, boom)
		}
	})

	t.Run("canceled context short-circuits jobs", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var ran atomic.Int32
		err := runPool(ctx, 2, 8, func(int) error {
			ran.Add(1)
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want %v", err, context.Canceled)
		}
		if ran.Load() != 0 {
			t.Errorf("%d jobs ran after cancellation, want 0", ran.Load())
		}
	})

	t.Run("zero jobs is a no-op", func(t *testing.T) {
		t.Parallel()

		err := runPool(context.Background(), 4, 0, func(int) error {
			t.Error("job ran unexpectedly")
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
