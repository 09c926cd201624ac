//go:build nodetrack
// +build nodetrack

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportedCountersFollowNodeLifetimes(t *testing.T) {
	require.True(t, ResetCounters())
	l := New()
	for i := 1; i <= 10; i++ {
		l.Insert(i)
	}
	assert.EqualValues(t, 10, Constructed())
	assert.Zero(t, Destroyed())
	assert.False(t, ResetCounters(), "reset must be refused while nodes are live")

	for i := 10; i > 0; i-- {
		require.True(t, l.Remove(i))
		assert.EqualValues(t, l.Size(), Constructed()-Destroyed())
	}
	assert.Equal(t, Constructed(), Destroyed())
	assert.True(t, ResetCounters())
	assert.Zero(t, Constructed())
}
