package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("property not found")
	// ErrLockTimeout means the status row stayed locked past the transaction's lock_timeout.
	ErrLockTimeout = errors.New("timed out waiting for property lock")
)

// Status is the listing state owned by the listings subsystem.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSold     Status = "sold"
	StatusRented   Status = "rented"
)

// Registry reads and writes a property's listing status.
//
//go:generate mockgen -source=property.go -destination=registry_mock.go -package=property
type Registry interface {
	Status(ctx context.Context, id uuid.UUID) (Status, error)
	// LockStatus reads the status and holds an exclusive row lock until the enclosing transaction ends.
	LockStatus(ctx context.Context, id uuid.UUID) (Status, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
}
