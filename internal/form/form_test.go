// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		inName       string
		inLocation   string
		wantName     string
		wantLocation string
		nameErr      string
		locationErr  string
	}{
		{
			name: "valid", inName: "Joe's Pizza", inLocation: "New York, NY",
			wantName: "Joe's Pizza", wantLocation: "New York, NY",
		},
		{
			name: "trims", inName: "  Joe's Pizza ", inLocation: "\tNew York, NY\n",
			wantName: "Joe's Pizza", wantLocation: "New York, NY",
		},
		{
			name: "both missing", inName: "   ", inLocation: "",
			nameErr: "Business name is required", locationErr: "Location is required",
		},
		{
			name: "too short", inName: " J ", inLocation: "NY",
			wantName: "J", wantLocation: "NY",
			nameErr: "Business name must be at least 2 characters",
		},
		{
			name: "short location", inName: "Cafe", inLocation: "X",
			wantName: "Cafe", wantLocation: "X",
			locationErr: "Location must be at least 2 characters",
		},
		{
			name: "multibyte counts runes", inName: "Çé", inLocation: "東京",
			wantName: "Çé", wantLocation: "東京",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Validate(tt.inName, tt.inLocation)

			if in.Name != tt.wantName || in.Location != tt.wantLocation {
				t.Errorf("Validate() input = %+v, want {%q %q}", in, tt.wantName, tt.wantLocation)
			}

			if tt.nameErr == "" && tt.locationErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if got := verr.Message(FieldName); got != tt.nameErr {
				t.Errorf("name message = %q, want %q", got, tt.nameErr)
			}
			if got := verr.Message(FieldLocation); got != tt.locationErr {
				t.Errorf("location message = %q, want %q", got, tt.locationErr)
			}
		})
	}
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	_, err := Validate("", "")
	want := "Business name is required; Location is required"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}
