package auth

import (
	"errors"
	"net/http"
)

// Authenticator is satisfied by *Gateway.
type Authenticator interface {
	Authenticate(token string) (Actor, error)
}

// Middleware rejects requests without a valid bearer credential and stores the Actor in the context.
// onError writes the failure response so callers keep a single error envelope.
func Middleware(a Authenticator, onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r.Header.Get("Authorization"))
			if !ok {
				onError(w, r, ErrUnauthenticated)
				return
			}

			actor, err := a.Authenticate(token)
			if err != nil {
				if !errors.Is(err, ErrUnauthenticated) {
					err = ErrInvalidCredential
				}

				onError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
