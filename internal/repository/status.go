package repository

// MutationStatus is the tagged outcome of conditional write operations that
// used to be expressed as bare status integers in an older incarnation of
// this API.  Each conditional insert/delete reports which precondition failed
// instead of collapsing everything into a boolean, so handlers can pick the
// right HTTP status without re-querying.
type MutationStatus int

const (
	// StatusOK means the mutation was applied.
	StatusOK MutationStatus = iota
	// StatusAlreadyExists means a uniqueness precondition failed: the
	// category/role already exists, the role is already assigned, or the
	// user already rated the recipe.
	StatusAlreadyExists
	// StatusSelfForbidden means the caller tried to act on their own record
	// where that is disallowed (rating one's own recipe).
	StatusSelfForbidden
	// StatusInvalidInput means the value itself is out of range, e.g. a
	// rating outside 1..5.
	StatusInvalidInput
	// StatusNotFound means the target row does not exist.
	StatusNotFound
)

// String returns a short machine-friendly label, used in JSON error bodies
// and log lines.
func (s MutationStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAlreadyExists:
		return "already_exists"
	case StatusSelfForbidden:
		return "self_forbidden"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
