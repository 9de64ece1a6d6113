// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LatencyRange describes a uniformly distributed artificial delay:
// Min + u*Spread for u in [0, 1).
type LatencyRange struct {
	// Min is the shortest delay.
	Min time.Duration `json:"min" yaml:"min"`

	// Spread is the width of the range above Min.
	Spread time.Duration `json:"spread" yaml:"spread"`
}

// IsZero reports whether both bounds are unset.
func (r LatencyRange) IsZero() bool {
	return r.Min == 0 && r.Spread == 0
}

// Max returns the exclusive upper bound of the range.
func (r LatencyRange) Max() time.Duration {
	return r.Min + r.Spread
}

// SimulationConfig holds settings for the simulated business-data service.
type SimulationConfig struct {
	// ErrorRate is the probability in [0, 1] that a call fails with a
	// transient error (default 0.05).
	ErrorRate float64 `json:"error_rate" yaml:"error_rate"`

	// ProfileLatency is the delay applied to business data lookups
	// (default 1500ms + up to 1000ms).
	ProfileLatency LatencyRange `json:"profile_latency" yaml:"profile_latency"`

	// HeadlineLatency is the delay applied to headline regeneration
	// (default 800ms + up to 700ms).
	HeadlineLatency LatencyRange `json:"headline_latency" yaml:"headline_latency"`

	// Seed fixes the random source when non-zero. Zero seeds from the
	// runtime's entropy.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}
