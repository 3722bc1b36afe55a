// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulate

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestDo_NoFailure(t *testing.T) {
	sim := New(Config{FailureRate: 0}, rand.NewPCG(1, 2))

	called := false
	err := sim.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !called {
		t.Error("Expected operation to be called")
	}
}

func TestDo_AlwaysFails(t *testing.T) {
	sim := New(Config{FailureRate: 1}, rand.NewPCG(1, 2))

	called := false
	err := sim.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("Do() error = %v, want ErrNetwork", err)
	}
	if called {
		t.Error("Operation must not run when a failure is injected")
	}
}

func TestDo_PropagatesOperationError(t *testing.T) {
	sim := New(Config{}, rand.NewPCG(1, 2))
	want := errors.New("boom")

	err := sim.Do(context.Background(), func(ctx context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("Do() error = %v, want %v", err, want)
	}
}

func TestDo_FailureRateIsApproximate(t *testing.T) {
	sim := New(Config{FailureRate: 0.07}, rand.NewPCG(42, 7))

	failures := 0
	const calls = 5000
	for i := 0; i < calls; i++ {
		if err := sim.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
			failures++
		}
	}

	rate := float64(failures) / calls
	if rate < 0.04 || rate > 0.10 {
		t.Errorf("observed failure rate %.3f, expected about 0.07", rate)
	}
}

func TestDo_DeterministicWithSeededSource(t *testing.T) {
	outcomes := func() []bool {
		sim := New(Config{FailureRate: 0.5}, rand.NewPCG(9, 9))
		var out []bool
		for i := 0; i < 20; i++ {
			err := sim.Do(context.Background(), func(context.Context) error { return nil })
			out = append(out, err == nil)
		}
		return out
	}

	a, b := outcomes(), outcomes()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("call %d differs between identically seeded simulators", i)
		}
	}
}

func TestDo_DelayWithinBounds(t *testing.T) {
	sim := New(Config{MinDelay: 20 * time.Millisecond, MaxDelay: 40 * time.Millisecond}, rand.NewPCG(3, 4))

	start := time.Now()
	if err := sim.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	elapsed := time.Since(start)

	if elapsed < 20*time.Millisecond {
		t.Errorf("elapsed %v, expected at least the minimum delay", elapsed)
	}
}

func TestDo_CancelledDuringDelay(t *testing.T) {
	sim := New(Config{MinDelay: time.Second, MaxDelay: time.Second}, rand.NewPCG(1, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	called := false
	err := sim.Do(ctx, func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want context.DeadlineExceeded", err)
	}
	if called {
		t.Error("Operation must not run after cancellation")
	}
}

func TestRun_ReturnsValue(t *testing.T) {
	sim := New(Config{}, rand.NewPCG(1, 2))

	got, err := Run(context.Background(), sim, func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("Run() = %d, want 42", got)
	}
}

func TestNew_ClampsInvertedBounds(t *testing.T) {
	sim := New(Config{MinDelay: 5 * time.Millisecond, MaxDelay: time.Millisecond}, nil)
	if sim.Config().MaxDelay != 5*time.Millisecond {
		t.Errorf("MaxDelay = %v, want clamped to MinDelay", sim.Config().MaxDelay)
	}
}
