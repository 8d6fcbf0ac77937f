package ports

import "time"

// Clock is the registry's source of the current time.
type Clock interface {
	Now() time.Time
}
