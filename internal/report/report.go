// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders business profiles for the terminal and moves them
// between commands as YAML files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pdiddy/growthpro/internal/headline"
	"github.com/pdiddy/growthpro/pkg/types"
)

const (
	fullStar  = "★"
	halfStar  = "½"
	emptyStar = "☆"
	maxStars  = 5
)

// Stars renders rating as a five-position bar: one full star per whole
// point, a half star for any fractional part, and empty stars for the rest.
func Stars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > maxStars {
		rating = maxStars
	}

	full := int(math.Floor(rating))
	var b strings.Builder
	b.WriteString(strings.Repeat(fullStar, full))
	if math.Mod(rating, 1) != 0 {
		b.WriteString(halfStar)
	}
	b.WriteString(strings.Repeat(emptyStar, maxStars-int(math.Ceil(rating))))
	return b.String()
}

// FormatCard writes p as a human-readable card to w.
func FormatCard(p types.BusinessProfile, w io.Writer) {
	fmt.Fprintln(w, p.Name)
	fmt.Fprintln(w, p.Location)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-15s  %s %s\n", "Google Rating", headline.FormatRating(p.Rating), Stars(p.Rating))
	fmt.Fprintf(w, "%-15s  %s\n", "Total Reviews", headline.FormatReviews(p.Reviews))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SEO Headline")
	fmt.Fprintf(w, "  %s\n", p.Headline)
}

// FormatJSON writes p as indented JSON to w.
func FormatJSON(p types.BusinessProfile, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// FormatTemplates writes the headline templates as a numbered list to w.
func FormatTemplates(templates []string, w io.Writer) {
	for i, tmpl := range templates {
		fmt.Fprintf(w, "%2d  %s\n", i+1, tmpl)
	}
	fmt.Fprintf(w, "\n%d templates\n", len(templates))
}
