package lease

import (
	"errors"
	"fmt"
)

// Validation errors: caused by the request, never retried.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidTerms  = errors.New("invalid lease terms")
	ErrInvalidAction = errors.New("invalid action")
)

// State-conflict errors: the caller's view is stale or it lost a race; refetch and retry.
var (
	ErrAlreadyResolved        = errors.New("negotiation already resolved")
	ErrConflictingNegotiation = errors.New("draft already has a pending negotiation")
	ErrNotNegotiable          = errors.New("draft is not open for negotiation")
	ErrNotFinalizable         = errors.New("draft is not approved for finalization")
	ErrPropertyUnavailable    = errors.New("property not available for leasing")
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrForbidden        = errors.New("forbidden")
)

// Infrastructure errors.
var (
	ErrCorruptTerms = errors.New("stored lease terms are corrupt")
	ErrBrokenChain  = errors.New("negotiation chain is inconsistent")
	ErrLockTimeout  = errors.New("timed out waiting for a row lock")
)

// ValidationError names the offending field of a terms document or request.
type ValidationError struct {
	Field  string
	Reason string
	kind   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.kind }

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, kind: ErrInvalidTerms}
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required", kind: ErrMissingFields}
}

// Kind returns the stable machine-readable code for an error returned by this package.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrInvalidTerms):
		return "invalid_terms"
	case errors.Is(err, ErrInvalidAction):
		return "invalid_action"
	case errors.Is(err, ErrAlreadyResolved):
		return "already_resolved"
	case errors.Is(err, ErrConflictingNegotiation):
		return "conflicting_negotiation"
	case errors.Is(err, ErrNotNegotiable):
		return "not_negotiable"
	case errors.Is(err, ErrNotFinalizable):
		return "not_finalizable"
	case errors.Is(err, ErrPropertyUnavailable):
		return "property_unavailable"
	case errors.Is(err, ErrPropertyNotFound):
		return "property_not_found"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrCorruptTerms):
		return "corrupt_terms"
	case errors.Is(err, ErrLockTimeout):
		return "lock_timeout"
	default:
		return "internal"
	}
}
