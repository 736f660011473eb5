package unitable

import "fmt"

// contractViolation aborts on a caller contract violation. The storage layer
// has no recoverable failures: an out-of-bounds index or a misused snapshot
// is a bug in the consuming solver, and reporting it as an error value would
// mask the bug while taxing the hot path.
func contractViolation(format string, args ...any) {
	panic(fmt.Sprintf("unitable: "+format, args...))
}

// checkBounds validates a slot index against the current table length.
func checkBounds(tag string, i, length int) {
	if i < 0 || i >= length {
		contractViolation("%s: index %d out of range [0, %d)", tag, i, length)
	}
}
