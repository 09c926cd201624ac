//go:build nodetrack
// +build nodetrack

package list

var tracked = newLedger()

func init() {
	hooks = tracked
}

// Constructed returns how many nodes were created since the last reset.
func Constructed() int64 {
	constructed, _ := tracked.counts()
	return constructed
}

// Destroyed returns how many nodes were released since the last reset.
func Destroyed() int64 {
	_, destroyed := tracked.counts()
	return destroyed
}

// ResetCounters zeroes both counters. It returns false, leaving them untouched,
// while any node is still owned by a list.
func ResetCounters() bool {
	return tracked.reset()
}
