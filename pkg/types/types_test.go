// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"
)

func TestWithHeadlineLeavesOriginal(t *testing.T) {
	p := BusinessProfile{Name: "Cafe", Location: "Austin", Rating: 4.1, Reviews: 90, Headline: "old"}
	q := p.WithHeadline("new")

	if p.Headline != "old" {
		t.Errorf("original headline = %q, want %q", p.Headline, "old")
	}
	if q.Headline != "new" {
		t.Errorf("copy headline = %q, want %q", q.Headline, "new")
	}
	if q.Metrics() != p.Metrics() {
		t.Errorf("metrics changed: %+v vs %+v", q.Metrics(), p.Metrics())
	}
}

func TestLatencyRange(t *testing.T) {
	var zero LatencyRange
	if !zero.IsZero() {
		t.Error("zero range should report IsZero")
	}

	r := LatencyRange{Min: 800 * time.Millisecond, Spread: 700 * time.Millisecond}
	if r.IsZero() {
		t.Error("non-zero range reported IsZero")
	}
	if got := r.Max(); got != 1500*time.Millisecond {
		t.Errorf("Max() = %v, want 1.5s", got)
	}
}
