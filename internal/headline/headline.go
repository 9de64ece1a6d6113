// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package headline composes SEO headlines for a business by filling one of
// a fixed set of phrasing templates with its name, location, rating, and
// review count.
package headline

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/growthpro/internal/random"
)

// Placeholder tokens recognised in templates.
const (
	NameToken     = "{name}"
	LocationToken = "{location}"
	RatingToken   = "{rating}"
	ReviewsToken  = "{reviews}"
)

var templates = [...]string{
	"{name} in {location} - Rated {rating}★ by {reviews}+ Happy Customers",
	"Top-Rated {name} in {location} | {reviews} Reviews & {rating}-Star Service",
	"{location}'s Premier {name} - {rating}★ Rating & {reviews}+ Satisfied Clients",
	"Expert {name} Services in {location} | {rating}-Star Rated with {reviews} Reviews",
	"{name} in {location} - {reviews}+ Reviews, {rating}★ Excellence Guaranteed",
	"Professional {name} in {location} | {rating}-Star Service, {reviews}+ Happy Customers",
	"{location}'s Trusted {name} - {rating}★ Rating from {reviews}+ Local Reviews",
	"Premium {name} Services in {location} | {rating}★ Rated by {reviews}+ Customers",
}

// Templates returns a copy of the headline templates in selection order.
func Templates() []string {
	out := make([]string, len(templates))
	copy(out, templates[:])
	return out
}

// reviewPrinter formats counts with English digit grouping.
var reviewPrinter = message.NewPrinter(language.English)

// Composer picks templates using its random source.
type Composer struct {
	src random.Source
}

// NewComposer returns a Composer drawing template choices from src.
func NewComposer(src random.Source) *Composer {
	return &Composer{src: src}
}

// Compose selects a template uniformly at random and substitutes every
// placeholder. Substitution happens in a single pass, so placeholder text
// inside name or location is left as-is. It makes exactly one draw from
// the source.
func (c *Composer) Compose(name, location string, rating float64, reviews int) string {
	return Fill(templates[random.Index(c.src, len(templates))], name, location, rating, reviews)
}

// Fill substitutes the placeholders of tmpl.
func Fill(tmpl, name, location string, rating float64, reviews int) string {
	r := strings.NewReplacer(
		NameToken, name,
		LocationToken, location,
		RatingToken, FormatRating(rating),
		ReviewsToken, FormatReviews(reviews),
	)
	return r.Replace(tmpl)
}

// FormatRating renders rating as its shortest decimal text, so 4.0 becomes
// "4" and 4.3 stays "4.3".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// FormatReviews renders a review count with thousands separators
// (1234 -> "1,234").
func FormatReviews(reviews int) string {
	return reviewPrinter.Sprintf("%d", reviews)
}
