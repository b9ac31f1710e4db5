package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrInvalidCredential = errors.New("invalid or expired credential")
)

// Actor is the authenticated caller as asserted by the credential.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	BranchID *int64
}

func (a Actor) IsClient() bool { return a.Role == RoleClient }

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
