package list

import (
	"slices"
	"sync"
)

// Guarded serializes every operation on a List behind a single lock.
type Guarded struct {
	mu   sync.RWMutex
	list List
}

func NewGuarded() *Guarded {
	return new(Guarded)
}

func (g *Guarded) Insert(value int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.list.Insert(value)
}

func (g *Guarded) Remove(value int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.list.Remove(value)
}

func (g *Guarded) Reverse() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.list.Reverse()
}

func (g *Guarded) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.list.Clear()
}

func (g *Guarded) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.list.Size()
}

func (g *Guarded) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.list.IsEmpty()
}

func (g *Guarded) Contains(value int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.list.Contains(value)
}

// Snapshot copies the values from head to tail.
func (g *Guarded) Snapshot() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Collect(g.list.Values())
}

// Inspect runs fn against the wrapped list under the read lock. fn must not mutate the list.
func (g *Guarded) Inspect(fn func(l *List) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn(&g.list)
}
