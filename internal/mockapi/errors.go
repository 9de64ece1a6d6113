// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mockapi

import "errors"

// Messages carried by injected failures.
const (
	MsgBusinessDataUnavailable = "Unable to fetch business data. Please try again."
	MsgHeadlineUnavailable     = "Unable to generate new headline. Please try again."
)

// Operation names reported in TransientServiceError.Op.
const (
	OpGetBusinessData    = "get_business_data"
	OpRegenerateHeadline = "regenerate_headline"
)

// ErrTransient matches every TransientServiceError under errors.Is.
var ErrTransient = errors.New("transient service error")

// TransientServiceError is the only failure the service produces. It stands
// in for a network or backend outage and is always safe to retry.
type TransientServiceError struct {
	// Op names the failed operation.
	Op string

	// Message is the display text for the user.
	Message string
}

func (e *TransientServiceError) Error() string {
	return e.Message
}

// Is reports whether target is ErrTransient.
func (e *TransientServiceError) Is(target error) bool {
	return target == ErrTransient
}

// Temporary marks the failure as retry-safe.
func (e *TransientServiceError) Temporary() bool {
	return true
}

// IsTransient reports whether err is, or wraps, a TransientServiceError.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
