//go:build nodetrack
// +build nodetrack

package harness

import "revlist/list"

func lifecycleAvailable() bool {
	return true
}

func lifecycleCounts() (constructed int64, destroyed int64, available bool) {
	return list.Constructed(), list.Destroyed(), true
}

func resetLifecycle() bool {
	return list.ResetCounters()
}
