// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package random provides the injectable source of randomness shared by the
// synthesizer, the headline composer, and the fault injector.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// pcgStream is XORed into the seed to derive the second PCG word.
const pcgStream = 0x9e3779b97f4a7c15

// locked serializes access to a *rand.Rand, which is not safe for
// concurrent use.
type locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// New returns a Source safe for concurrent use. A zero seed draws a fresh
// seed from the runtime's entropy; any other value gives a reproducible
// sequence.
func New(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &locked{rng: rand.New(rand.NewPCG(seed, seed^pcgStream))}
}

// Index maps a draw from src onto [0, n) as floor(u*n). It returns 0 when
// n <= 0.
func Index(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence replays a fixed list of values, cycling when exhausted. It lets
// tests script every draw a call makes.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
