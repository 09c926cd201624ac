package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackNodes installs a fresh ledger for the duration of the test.
func trackNodes(t *testing.T) *ledger {
	t.Helper()
	tracker := newLedger()
	previous := hooks
	hooks = tracker
	t.Cleanup(func() { hooks = previous })
	return tracker
}

func (l *ledger) liveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// reachable walks the chain, giving up once it is longer than limit.
func reachable(l *List, limit int) int {
	count := 0
	for node := l.Front(); node != nil && count <= limit; node = node.Next() {
		count++
	}
	return count
}

func requireBalanced(t *testing.T, tracker *ledger, l *List) {
	t.Helper()
	constructed, destroyed := tracker.counts()
	require.EqualValues(t, l.Size(), reachable(l, l.Size()), "reachable nodes differ from size")
	require.EqualValues(t, l.Size(), constructed-destroyed, "live nodes differ from size")
	require.Equal(t, l.Size(), tracker.liveCount())
}

func TestLedgerCountsLifetimes(t *testing.T) {
	tracker := newLedger()
	first, second := &Node{value: 1}, &Node{value: 2}
	tracker.created(first)
	tracker.created(second)
	tracker.released(first)

	constructed, destroyed := tracker.counts()
	assert.EqualValues(t, 2, constructed)
	assert.EqualValues(t, 1, destroyed)
	assert.Equal(t, 1, tracker.liveCount())
}

func TestLedgerPanicsOnDoubleRelease(t *testing.T) {
	tracker := newLedger()
	node := &Node{value: 7}
	tracker.created(node)
	tracker.released(node)

	assert.Panics(t, func() { tracker.released(node) })
}

func TestLedgerPanicsOnUnknownNode(t *testing.T) {
	tracker := newLedger()
	assert.Panics(t, func() { tracker.released(&Node{value: 3}) })
}

func TestLedgerResetRefusesWhileNodesLive(t *testing.T) {
	tracker := newLedger()
	node := &Node{value: 1}
	tracker.created(node)

	assert.False(t, tracker.reset())
	constructed, _ := tracker.counts()
	assert.EqualValues(t, 1, constructed)

	tracker.released(node)
	assert.True(t, tracker.reset())
	constructed, destroyed := tracker.counts()
	assert.Zero(t, constructed)
	assert.Zero(t, destroyed)
}
