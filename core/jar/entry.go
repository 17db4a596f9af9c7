package jar

// State tracks the lifecycle of a cookie entry within a single request.
// The initial Unread state is implicit: a name absent from the jar's entry
// map has never been touched by handler code.
type State uint8

const (
	// StateReadOnly marks a cookie that was read from the incoming request
	// but never written. Read-only entries are never serialized; echoing the
	// browser's own cookie back would reset its freshness for no reason.
	StateReadOnly State = iota

	// StateWritten marks a cookie whose value or attributes were set during
	// this request. Written entries are serialized as Set-Cookie lines.
	StateWritten

	// StateDeleted marks a cookie explicitly removed during this request.
	// Deleted entries are serialized as epoch-zero expiry lines.
	StateDeleted
)

// String returns a human-readable state name for logging and debugging.
func (s State) String() string {
	switch s {
	case StateReadOnly:
		return "read-only"
	case StateWritten:
		return "written"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// entry is the jar's knowledge of one cookie name.
type entry struct {
	value   string
	options Options
	state   State
}
