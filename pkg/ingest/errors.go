package ingest

import (
	"errors"
	"fmt"
)

// ErrSeriesNotFound is reported when an update targets an external id that
// has never been ingested.
var ErrSeriesNotFound = errors.New("no series with this external id")

// FieldError describes one violated constraint, addressed by a JSON field
// path such as "episodes[0].urls[1].quality".
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError is a structural failure of a single ingest record. It is
// data, not a fault: the batch coordinator records it as a failed item and
// moves on.
type ValidationError struct {
	Details []FieldError `json:"details"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record validation failed on %d field(s)", len(e.Details))
}

// UnresolvedReferenceError is a domain failure: a caller-supplied name or id
// did not resolve to a known taxonomy option or category.
type UnresolvedReferenceError struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unknown %s %q for field %s", e.Kind, e.Name, e.Field)
}

// IsItemError reports whether err is a per-record business failure. Anything
// else is treated as infrastructure and aborts the whole call instead of
// being swallowed into an item result.
func IsItemError(err error) bool {
	var ve *ValidationError
	var ur *UnresolvedReferenceError
	return errors.As(err, &ve) || errors.As(err, &ur) || errors.Is(err, ErrSeriesNotFound)
}

func fieldErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Details: []FieldError{{Field: field, Constraint: fmt.Sprintf(format, args...)}},
	}
}
