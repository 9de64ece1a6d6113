// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth derives a plausible rating and review count for a business
// from its name and location, without any real dataset behind it.
package synth

import (
	"math"
	"strings"

	"github.com/pdiddy/growthpro/internal/random"
	"github.com/pdiddy/growthpro/pkg/types"
)

const (
	// MinRating is the lowest rating Synthesize produces.
	MinRating = 3.5

	// RatingSpan is the width of the rating range above MinRating.
	RatingSpan = 1.4

	// MinReviews is the lowest base review count.
	MinReviews = 50

	// ReviewSpan is the number of distinct base review counts.
	ReviewSpan = 500

	// MetroMultiplier scales the review count for major metro areas.
	MetroMultiplier = 1.5
)

// majorMetros are matched as lower-case substrings of the location.
var majorMetros = []string{"new york", "los angeles", "chicago"}

// Synthesize draws a rating and review count for the business. The name is
// accepted for parity with the lookup it simulates but does not influence
// the result. Two values are drawn from src: the rating, then the base
// review count.
func Synthesize(src random.Source, name, location string) types.Metrics {
	rating := math.Round((MinRating+src.Float64()*RatingSpan)*10) / 10

	base := math.Floor(src.Float64()*ReviewSpan) + MinReviews
	reviews := int(math.Floor(base * LocationMultiplier(location)))

	return types.Metrics{Rating: rating, Reviews: reviews}
}

// LocationMultiplier returns MetroMultiplier when location names a major
// metro area (case-insensitive substring match) and 1 otherwise.
func LocationMultiplier(location string) float64 {
	loc := strings.ToLower(location)
	for _, metro := range majorMetros {
		if strings.Contains(loc, metro) {
			return MetroMultiplier
		}
	}
	return 1
}
