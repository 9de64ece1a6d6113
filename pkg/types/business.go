// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the growthpro service.
// Implements: BusinessProfile, Metrics (business data synthesis);
//
//	SimulationConfig, LatencyRange (fault and latency injection).
package types

// Metrics holds the synthesized rating and review count for a business.
type Metrics struct {
	// Rating lies in [3.5, 4.9] and carries exactly one decimal digit.
	Rating float64 `json:"rating" yaml:"rating"`

	// Reviews is the simulated number of customer reviews (never negative).
	Reviews int `json:"reviews" yaml:"reviews"`
}

// BusinessProfile is the record returned to a caller after a business
// analysis: the submitted name and location, the synthesized metrics, and
// an SEO headline. A profile is never modified by the service once
// returned; callers replace the headline with WithHeadline.
type BusinessProfile struct {
	// Name is the business name exactly as submitted.
	Name string `json:"name" yaml:"name"`

	// Location is the business location exactly as submitted.
	Location string `json:"location" yaml:"location"`

	// Rating lies in [3.5, 4.9] and carries exactly one decimal digit.
	Rating float64 `json:"rating" yaml:"rating"`

	// Reviews is the simulated number of customer reviews.
	Reviews int `json:"reviews" yaml:"reviews"`

	// Headline is the generated SEO headline.
	Headline string `json:"headline" yaml:"headline"`
}

// Metrics returns the rating and review count of the profile.
func (p BusinessProfile) Metrics() Metrics {
	return Metrics{Rating: p.Rating, Reviews: p.Reviews}
}

// WithHeadline returns a copy of p carrying headline.
func (p BusinessProfile) WithHeadline(headline string) BusinessProfile {
	p.Headline = headline
	return p
}
