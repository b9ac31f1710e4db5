package lease

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/leasedesk/internal/property"
)

// checkApprovedAndFree guards every write that references a property.
// With lock set the status row stays locked for the rest of the transaction.
func checkApprovedAndFree(ctx context.Context, reg property.Registry, id uuid.UUID, lock bool) error {
	read := reg.Status
	if lock {
		read = reg.LockStatus
	}

	status, err := read(ctx, id)
	if err != nil {
		return registryError("checking property", id, err)
	}

	if status != property.StatusApproved {
		return fmt.Errorf("%w: property %s is %s", ErrPropertyUnavailable, id, status)
	}

	return nil
}

// registryError translates property registry failures into this package's errors.
func registryError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, property.ErrNotFound):
		return ErrPropertyNotFound
	case errors.Is(err, property.ErrLockTimeout):
		return fmt.Errorf("%s %s: %w", op, id, ErrLockTimeout)
	default:
		return fmt.Errorf("%s %s: %w", op, id, err)
	}
}
