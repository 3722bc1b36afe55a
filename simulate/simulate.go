// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulate

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// Defaults for Config.
const (
	DefaultMinDelay    = 200 * time.Millisecond
	DefaultMaxDelay    = 1200 * time.Millisecond
	DefaultFailureRate = 0.07
)

// NetworkErrorMessage is the client-facing text of an injected failure.
const NetworkErrorMessage = "Network error: Operation failed"

// ErrNetwork is the injected transient failure. Callers may retry.
var ErrNetwork = errors.New("network error: operation failed")

type Config struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64 // 0..1
}

// DefaultConfig returns the latency and failure settings used in production.
func DefaultConfig() Config {
	return Config{
		MinDelay:    DefaultMinDelay,
		MaxDelay:    DefaultMaxDelay,
		FailureRate: DefaultFailureRate,
	}
}

// Simulator delays operations by a random duration and fails a fraction
// of them, standing in for an unreliable network.
type Simulator struct {
	cfg Config

	mu  sync.Mutex // *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// New creates a Simulator. A nil src seeds from the clock; pass a fixed
// source for deterministic tests.
func New(cfg Config, src rand.Source) *Simulator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1)
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	return &Simulator{cfg: cfg, rng: rand.New(src)}
}

// Config returns the simulator's settings.
func (s *Simulator) Config() Config {
	return s.cfg
}

// Do waits for a random delay, then either returns ErrNetwork or runs op.
// If ctx is done before the delay elapses, op is not run and ctx.Err()
// is returned.
func (s *Simulator) Do(ctx context.Context, op func(context.Context) error) error {
	delay, fail := s.roll()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if fail {
		return ErrNetwork
	}
	return op(ctx)
}

// Run is Do for operations that return a value.
func Run[T any](ctx context.Context, s *Simulator, op func(context.Context) (T, error)) (T, error) {
	var out T
	err := s.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = op(ctx)
		return err
	})
	return out, err
}

// roll draws the delay and the failure decision for one call.
func (s *Simulator) roll() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delay := s.cfg.MinDelay
	if span := s.cfg.MaxDelay - s.cfg.MinDelay; span > 0 {
		delay += time.Duration(s.rng.Int64N(int64(span) + 1))
	}
	return delay, s.rng.Float64() < s.cfg.FailureRate
}
