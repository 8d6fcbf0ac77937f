package kernel

import (
	"strconv"
)

// ID identifies a package, warehouse, driver or route.
//
// IDs are issued by a per-entity counter that starts at 0 and grows by one
// with every creation. They are never reused, so 0 is a valid ID and the zero
// value needs no guard.
type ID uint64

// Next returns the ID issued after id.
func (id ID) Next() ID {
	return id + 1
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
