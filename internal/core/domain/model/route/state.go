package route

// State is the lifecycle position of a route. It is derived from the start
// and end timestamps rather than stored.
//
//	Created ──> Started ──> Completed
//
// There is no cancellation and no way back.
type State int

const (
	Created State = iota + 1
	Started
	Completed
)

func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Started:
		return "Started"
	case Completed:
		return "Completed"
	}
	return "Unknown"
}
