//go:build !nodetrack
// +build !nodetrack

package harness

func lifecycleAvailable() bool {
	return false
}

func lifecycleCounts() (constructed int64, destroyed int64, available bool) {
	return 0, 0, false
}

func resetLifecycle() bool {
	return true
}
