// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededIsReproducible(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestNewValuesInUnitInterval(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d = %v, want [0, 1)", i, v)
		}
	}
}

func TestNewConcurrentUse(t *testing.T) {
	src := New(0)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				src.Float64()
			}
		}()
	}
	wg.Wait()
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		n    int
		want int
	}{
		{"zero", 0, 8, 0},
		{"middle", 0.5, 8, 4},
		{"just below one", 0.9999999, 8, 7},
		{"one clamps", 1, 8, 7},
		{"empty range", 0.3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Index(NewSequence(tt.u), tt.n))
		})
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Draws())

	assert.Equal(t, 0.0, NewSequence().Float64())
}
