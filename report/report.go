package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/avast/retry-go"
)

// Report represents the outcome of a verification run
type Report struct {
	Scenarios       map[string]*ScenarioResult `json:"scenarios"`
	TotalOperations int                        `json:"totalOperations"`
	PassedCount     int                        `json:"passedCount"`
	FailedCount     int                        `json:"failedCount"`
	Tracked         bool                       `json:"tracked"`
	Constructed     int64                      `json:"constructed"`
	Destroyed       int64                      `json:"destroyed"`
	mu              sync.Mutex
}

// ScenarioResult represents the outcome of a single scenario
type ScenarioResult struct {
	Operations int     `json:"operations"`
	Passed     bool    `json:"passed"`
	Error      string  `json:"error,omitempty"`
	DurationMs float64 `json:"durationMs"`
}

// NewReport creates a new Report instance with initialized maps
func NewReport() *Report {
	return &Report{
		Scenarios: make(map[string]*ScenarioResult),
	}
}

// AddResult records a finished scenario. A nil err means it passed.
func (r *Report) AddResult(name string, operations int, elapsed time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := &ScenarioResult{
		Operations: operations,
		Passed:     err == nil,
		DurationMs: float64(elapsed.Microseconds()) / 1000,
	}
	if err != nil {
		result.Error = err.Error()
		r.FailedCount++
	} else {
		r.PassedCount++
	}
	r.TotalOperations += operations
	r.Scenarios[name] = result
}

// Finalize records the node lifetime counters observed at the end of the run
func (r *Report) Finalize(tracked bool, constructed int64, destroyed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Tracked = tracked
	r.Constructed = constructed
	r.Destroyed = destroyed
}

// Leaked returns how many nodes were constructed but never released
func (r *Report) Leaked() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Constructed - r.Destroyed
}

// Write stores the report as indented JSON at outputPath
func (r *Report) Write(outputPath string) error {
	r.mu.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to encode report: %v", err)
	}

	err = retry.Do(
		func() error {
			return os.WriteFile(outputPath, data, 0644)
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err) && !os.IsPermission(err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to write report to '%v': %w", outputPath, err)
	}
	return nil
}
