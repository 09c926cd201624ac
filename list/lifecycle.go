package list

import (
	"fmt"
	"sync"
)

// lifecycle observes node construction and release.
type lifecycle interface {
	created(node *Node)
	released(node *Node)
}

type untracked struct{}

func (untracked) created(*Node)  {}
func (untracked) released(*Node) {}

var hooks lifecycle = untracked{}

// ledger counts node lifetimes and keeps the set of nodes that are still owned somewhere.
type ledger struct {
	mu          sync.Mutex
	live        map[*Node]struct{}
	constructed int64
	destroyed   int64
}

func newLedger() *ledger {
	return &ledger{live: make(map[*Node]struct{})}
}

func (l *ledger) created(node *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.live[node] = struct{}{}
	l.constructed++
}

func (l *ledger) released(node *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, found := l.live[node]; !found {
		panic(fmt.Sprintf("list: node holding %d released while not live", node.value))
	}
	delete(l.live, node)
	l.destroyed++
}

func (l *ledger) counts() (constructed int64, destroyed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.constructed, l.destroyed
}

// reset zeroes the counters. It refuses while any tracked node is still live,
// since releasing such a node later would look like a double release.
func (l *ledger) reset() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.live) > 0 {
		return false
	}
	l.constructed = 0
	l.destroyed = 0
	return true
}
