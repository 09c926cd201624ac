package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResultCountsOutcomes(t *testing.T) {
	r := NewReport()
	r.AddResult("insert-order", 10, 2*time.Millisecond, nil)
	r.AddResult("remove-all", 20, time.Millisecond, errors.New("size is 3, expected 0"))

	assert.Equal(t, 30, r.TotalOperations)
	assert.Equal(t, 1, r.PassedCount)
	assert.Equal(t, 1, r.FailedCount)
	require.Contains(t, r.Scenarios, "remove-all")
	assert.False(t, r.Scenarios["remove-all"].Passed)
	assert.Equal(t, "size is 3, expected 0", r.Scenarios["remove-all"].Error)
	assert.True(t, r.Scenarios["insert-order"].Passed)
	assert.InDelta(t, 2.0, r.Scenarios["insert-order"].DurationMs, 0.001)
}

func TestFinalizeAndLeaked(t *testing.T) {
	r := NewReport()
	r.Finalize(true, 12, 9)
	assert.True(t, r.Tracked)
	assert.EqualValues(t, 3, r.Leaked())
}

func TestWriteProducesJSON(t *testing.T) {
	r := NewReport()
	r.AddResult("remove-from-empty", 1, time.Millisecond, nil)
	r.Finalize(false, 0, 0)

	outputPath := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, r.Write(outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "scenarios")
	assert.EqualValues(t, 1, decoded["passedCount"])
	assert.EqualValues(t, 1, decoded["totalOperations"])
	assert.Equal(t, false, decoded["tracked"])
}

func TestWriteFailsForMissingDirectory(t *testing.T) {
	r := NewReport()
	err := r.Write(filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
}
