// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form validates the business lookup form before any service call
// is made.
package form

import (
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum number of characters, after trimming, for both
// the business name and the location.
const MinLength = 2

// Field names used in FieldError.
const (
	FieldName     = "name"
	FieldLocation = "location"
)

// Input is a validated, trimmed form submission.
type Input struct {
	Name     string
	Location string
}

// FieldError describes a problem with one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found in a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Message returns the error for field, or "" if the field is valid.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate trims name and location and checks each is present and at least
// MinLength characters long. It returns a *ValidationError listing every
// failing field.
func Validate(name, location string) (Input, error) {
	in := Input{
		Name:     strings.TrimSpace(name),
		Location: strings.TrimSpace(location),
	}

	var fields []FieldError
	if msg := check(in.Name, "Business name"); msg != "" {
		fields = append(fields, FieldError{Field: FieldName, Message: msg})
	}
	if msg := check(in.Location, "Location"); msg != "" {
		fields = append(fields, FieldError{Field: FieldLocation, Message: msg})
	}
	if len(fields) > 0 {
		return in, &ValidationError{Fields: fields}
	}
	return in, nil
}

func check(value, label string) string {
	switch {
	case value == "":
		return label + " is required"
	case utf8.RuneCountInString(value) < MinLength:
		return label + " must be at least 2 characters"
	}
	return ""
}
