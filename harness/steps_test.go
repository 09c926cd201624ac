package harness

import (
	"revlist/list"
	"revlist/options"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRun() *scenarioRun {
	return &scenarioRun{
		name:   "test",
		runner: &scenarioRunner{opts: &options.Options{Size: 10, Parallel: 1}},
	}
}

func TestDumpList(t *testing.T) {
	l := list.New()
	assert.Equal(t, "\nPrinting the list...\nList is empty. Nothing to print.", dumpList(l))

	for v := 1; v <= 3; v++ {
		l.Insert(v)
	}
	assert.Equal(t,
		"\nPrinting the list...\nList size = 3\n########## START OF LIST ##########\nhead -> 3->2->1\n########## END OF LIST ##########",
		dumpList(l))
	l.Clear()
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "[]", formatValues(nil))
	assert.Equal(t, "[1 2 3]", formatValues([]int{1, 2, 3}))
	assert.Equal(t, "[1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 ... (25 values)]", formatValues(ascending(1, 25)))
}

func TestAscendingAndDescending(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ascending(1, 3))
	assert.Equal(t, []int{3, 2, 1}, descending(3, 1))
	assert.Empty(t, ascending(1, 0))
	assert.Empty(t, descending(0, 1))
}

func TestStepsCountOperationsAndCheck(t *testing.T) {
	run := newTestRun()
	l := run.newList()

	require.NoError(t, run.insert(l, 1, 2, 3))
	require.NoError(t, run.expectRemove(l, 2, true))
	require.NoError(t, run.expectRemove(l, 2, false))
	require.NoError(t, run.reverse(l))
	require.NoError(t, run.expectValues(l, []int{1, 3}))
	require.NoError(t, run.expectSize(l, 2))
	assert.Equal(t, 6, run.operations)

	assert.Error(t, run.expectValues(l, []int{3, 1}))
	assert.Error(t, run.expectSize(l, 3))
	assert.Error(t, run.expectRemove(l, 42, true))

	require.NoError(t, run.clear(l))
	require.NoError(t, run.expectValues(l, []int{}))
	require.NoError(t, run.release())
}

func TestReleaseClearsEveryList(t *testing.T) {
	run := newTestRun()
	l := run.newList()
	g := run.newGuarded()
	l.Insert(1)
	g.Insert(2)

	require.NoError(t, run.release())
	assert.True(t, l.IsEmpty())
	assert.True(t, g.IsEmpty())
}
