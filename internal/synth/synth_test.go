// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/growthpro/internal/random"
)

// hasOneDecimal reports whether r has at most one digit after the point.
func hasOneDecimal(r float64) bool {
	return math.Abs(r*10-math.Round(r*10)) < 1e-9
}

func TestSynthesizeRatingRange(t *testing.T) {
	src := random.New(1)
	for i := 0; i < 5000; i++ {
		m := Synthesize(src, "Joe's Pizza", "Austin, TX")
		if m.Rating < 3.5 || m.Rating > 4.9 {
			t.Fatalf("rating %v out of [3.5, 4.9]", m.Rating)
		}
		if !hasOneDecimal(m.Rating) {
			t.Fatalf("rating %v has more than one decimal digit", m.Rating)
		}
		if m.Reviews < MinReviews || m.Reviews >= MinReviews+ReviewSpan {
			t.Fatalf("reviews %d out of [50, 549]", m.Reviews)
		}
	}
}

func TestSynthesizeRoundsToNearest(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want float64
	}{
		{"lower bound", 0, 3.5},
		{"rounds down", 0.1, 3.6}, // 3.64
		{"rounds up", 0.2, 3.8},   // 3.78
		{"upper edge", 0.99999, 4.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Synthesize(random.NewSequence(tt.u, 0), "A", "B")
			assert.InDelta(t, tt.want, m.Rating, 1e-9)
		})
	}
}

func TestSynthesizeReviews(t *testing.T) {
	tests := []struct {
		name     string
		u        float64
		location string
		want     int
	}{
		{"minimum", 0, "Austin, TX", 50},
		{"maximum", 0.9999, "Austin, TX", 549},
		{"metro minimum", 0, "New York, NY", 75},
		{"metro floors", 0.0021, "Chicago", 76}, // base 51 -> 76.5
		{"metro case-insensitive", 0.5, "downtown LOS ANGELES", 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Synthesize(random.NewSequence(0, tt.u), "A", tt.location)
			assert.Equal(t, tt.want, m.Reviews)
		})
	}
}

func TestSynthesizeDrawsTwice(t *testing.T) {
	src := random.NewSequence(0.5)
	Synthesize(src, "A", "B")
	assert.Equal(t, 2, src.Draws())
}

func TestLocationMultiplier(t *testing.T) {
	tests := []struct {
		location string
		want     float64
	}{
		{"New York, NY", 1.5},
		{"Brooklyn, new york", 1.5},
		{"Los Angeles, CA", 1.5},
		{"CHICAGO", 1.5},
		{"Newark, NJ", 1},
		{"York, PA", 1},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationMultiplier(tt.location))
		})
	}
}

func TestMetroReviewsScaleInExpectation(t *testing.T) {
	const trials = 1000
	src := random.New(2026)

	var metro, other float64
	for i := 0; i < trials; i++ {
		metro += float64(Synthesize(src, "Cafe", "Chicago, IL").Reviews)
		other += float64(Synthesize(src, "Cafe", "Boise, ID").Reviews)
	}
	require.Greater(t, other, 0.0)

	ratio := metro / other
	assert.InDelta(t, 1.5, ratio, 0.12, "mean review ratio metro/other")
}
