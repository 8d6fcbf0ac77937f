package kernel

import (
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID is a random identifier for records that are not numbered by a registry
// counter, such as delivery notifications. It wraps github.com/google/uuid.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id) // e.g. "550e8400-e29b-41d4-a716-446655440000"
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// Validate rejects the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
