package rnc

// CanReopen reports whether a record in the given state may be reopened.
// Only Closed records qualify; the data layer itself stays permissive and
// this guard belongs to the service above it. Closing carries no such rule:
// re-closing overwrites the closure fields as a consistent group.
func CanReopen(status Status) bool {
	return status == StatusClosed
}
