// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mockapi simulates the remote business-insights API. Each call
// waits out an artificial delay and may fail with a TransientServiceError,
// standing in for a real backend that does not exist yet.
//
// Conceptual endpoints:
//
//	POST /business-data          {name, location} -> BusinessProfile
//	GET  /regenerate-headline    ?name=&location=&rating=&reviews= -> headline
package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/growthpro/internal/async"
	"github.com/pdiddy/growthpro/internal/headline"
	"github.com/pdiddy/growthpro/internal/random"
	"github.com/pdiddy/growthpro/internal/synth"
	"github.com/pdiddy/growthpro/pkg/types"
)

// DefaultErrorRate is the probability that any single call fails.
const DefaultErrorRate = 0.05

var (
	defaultProfileLatency  = types.LatencyRange{Min: 1500 * time.Millisecond, Spread: 1000 * time.Millisecond}
	defaultHeadlineLatency = types.LatencyRange{Min: 800 * time.Millisecond, Spread: 700 * time.Millisecond}
)

// DefaultConfig returns the simulation settings used when nothing is
// configured.
func DefaultConfig() types.SimulationConfig {
	return types.SimulationConfig{
		ErrorRate:       DefaultErrorRate,
		ProfileLatency:  defaultProfileLatency,
		HeadlineLatency: defaultHeadlineLatency,
	}
}

// Sleeper suspends the calling goroutine for d. It returns early with
// ctx.Err() if ctx is done first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper, backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Option customizes a Service.
type Option func(*Service)

// WithSource replaces the random source built from the config seed.
func WithSource(src random.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSleeper replaces the timer-backed delay.
func WithSleeper(sleep Sleeper) Option {
	return func(s *Service) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// Service wraps the synthesizer and headline composer with artificial
// latency and randomized failures. Calls share nothing but the random
// source and may resolve in any order.
type Service struct {
	cfg      types.SimulationConfig
	src      random.Source
	composer *headline.Composer
	sleep    Sleeper
}

// New builds a Service from cfg. Zero latency ranges take their defaults;
// an error rate outside [0, 1] or a negative latency bound is rejected.
func New(cfg types.SimulationConfig, opts ...Option) (*Service, error) {
	if cfg.ErrorRate < 0 || cfg.ErrorRate > 1 {
		return nil, fmt.Errorf("error rate %v outside [0, 1]", cfg.ErrorRate)
	}
	if cfg.ProfileLatency.IsZero() {
		cfg.ProfileLatency = defaultProfileLatency
	}
	if cfg.HeadlineLatency.IsZero() {
		cfg.HeadlineLatency = defaultHeadlineLatency
	}
	for _, r := range []types.LatencyRange{cfg.ProfileLatency, cfg.HeadlineLatency} {
		if r.Min < 0 || r.Spread < 0 {
			return nil, fmt.Errorf("latency range %v+%v has a negative bound", r.Min, r.Spread)
		}
	}

	s := &Service{cfg: cfg, sleep: Sleep}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = random.New(cfg.Seed)
	}
	s.composer = headline.NewComposer(s.src)
	return s, nil
}

// Config returns the effective settings.
func (s *Service) Config() types.SimulationConfig {
	return s.cfg
}

// GetBusinessData synthesizes a profile for the business after the profile
// delay. A failing call resolves at once with a TransientServiceError and
// skips the delay. The caller is expected to have validated both inputs.
func (s *Service) GetBusinessData(ctx context.Context, name, location string) *async.Future[types.BusinessProfile] {
	return async.Go(ctx, func(ctx context.Context) (types.BusinessProfile, error) {
		if s.shouldFail() {
			return types.BusinessProfile{}, &TransientServiceError{Op: OpGetBusinessData, Message: MsgBusinessDataUnavailable}
		}
		if err := s.wait(ctx, s.cfg.ProfileLatency); err != nil {
			return types.BusinessProfile{}, err
		}

		m := synth.Synthesize(s.src, name, location)
		return types.BusinessProfile{
			Name:     name,
			Location: location,
			Rating:   m.Rating,
			Reviews:  m.Reviews,
			Headline: s.composer.Compose(name, location, m.Rating, m.Reviews),
		}, nil
	})
}

// RegenerateHeadline composes a fresh headline for a profile the caller
// already holds. Rating and reviews are used verbatim; nothing is
// re-synthesized.
func (s *Service) RegenerateHeadline(ctx context.Context, name, location string, rating float64, reviews int) *async.Future[string] {
	return async.Go(ctx, func(ctx context.Context) (string, error) {
		if s.shouldFail() {
			return "", &TransientServiceError{Op: OpRegenerateHeadline, Message: MsgHeadlineUnavailable}
		}
		if err := s.wait(ctx, s.cfg.HeadlineLatency); err != nil {
			return "", err
		}
		return s.composer.Compose(name, location, rating, reviews), nil
	})
}

func (s *Service) shouldFail() bool {
	return s.src.Float64() < s.cfg.ErrorRate
}

// wait draws a delay from r and sleeps for it.
func (s *Service) wait(ctx context.Context, r types.LatencyRange) error {
	d := r.Min + time.Duration(s.src.Float64()*float64(r.Spread))
	return s.sleep(ctx, d)
}
