package lease

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/httpx"
	"github.com/MrJamesThe3rd/leasedesk/internal/lease"
)

// retryAfter is sent with lock timeouts; the request is safe to repeat.
const retryAfter = "1"

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// WriteError maps an error to its status and envelope. Infrastructure failures are logged
// and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", err.Error(), nil)
		return
	case errors.Is(err, auth.ErrInvalidCredential):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid_credential", err.Error(), nil)
		return
	}

	code := lease.Kind(err)

	var verr *lease.ValidationError
	if errors.As(err, &verr) {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, lease.ErrMissingFields) {
			status = http.StatusBadRequest
		}

		httpx.WriteError(w, r, status, code, err.Error(), fieldError{Field: verr.Field, Reason: verr.Reason})

		return
	}

	switch {
	case errors.Is(err, lease.ErrInvalidAction):
		httpx.WriteError(w, r, http.StatusBadRequest, code, err.Error(), nil)
	case errors.Is(err, lease.ErrForbidden):
		httpx.WriteError(w, r, http.StatusForbidden, code, "not permitted for this role", nil)
	case errors.Is(err, lease.ErrPropertyUnavailable),
		errors.Is(err, lease.ErrAlreadyResolved),
		errors.Is(err, lease.ErrConflictingNegotiation),
		errors.Is(err, lease.ErrNotNegotiable),
		errors.Is(err, lease.ErrNotFinalizable):
		httpx.WriteError(w, r, http.StatusConflict, code, err.Error(), nil)
	case errors.Is(err, lease.ErrNotFound), errors.Is(err, lease.ErrPropertyNotFound):
		httpx.WriteError(w, r, http.StatusNotFound, code, err.Error(), nil)
	case errors.Is(err, lease.ErrLockTimeout):
		slog.WarnContext(r.Context(), "lease request timed out on a row lock",
			"request_id", httpx.RequestID(r), "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Retry-After", retryAfter)
		httpx.WriteError(w, r, http.StatusServiceUnavailable, code, "the resource is busy, retry shortly", nil)
	default:
		slog.ErrorContext(r.Context(), "lease request failed",
			"request_id", httpx.RequestID(r), "method", r.Method, "path", r.URL.Path, "code", code, "error", err)
		httpx.WriteError(w, r, http.StatusInternalServerError, code, "internal error", nil)
	}
}
