package list

import "iter"

// List is a singly linked list of integers. The list owns its head node and
// every node owns its successor, so each node has exactly one owner at a time.
// A List is not safe for concurrent use; see Guarded.
type List struct {
	head *Node
	size int
}

func New() *List {
	return new(List)
}

// setHead installs node as the head, dropping the previous head chain unless it was taken out first.
func (l *List) setHead(node *Node) {
	previous := l.head
	l.head = node
	if previous != node {
		dropChain(previous)
	}
}

func (l *List) takeHead() *Node {
	head := l.head
	l.head = nil
	return head
}

// Insert prepends value, so iteration yields values in reverse insertion order.
func (l *List) Insert(value int) {
	node := newNode(value)
	node.setNext(l.takeHead())
	l.setHead(node)
	l.size++
}

// Remove drops the first node holding value, counting from the head.
// It reports whether such a node existed.
func (l *List) Remove(value int) bool {
	if l.IsEmpty() {
		return false
	}

	if l.head.value == value {
		l.setHead(l.head.takeNext())
		l.size--
		return true
	}

	current := l.head
	for current.next != nil && current.next.value != value {
		current = current.next
	}
	if current.next == nil {
		return false
	}

	// The victim must give up its successor first, otherwise dropping it
	// would take the rest of the chain with it.
	rest := current.next.takeNext()
	current.setNext(rest)
	l.size--
	return true
}

// Reverse flips the order of the chain in place without allocating nodes.
func (l *List) Reverse() {
	var previous *Node
	current := l.takeHead()
	for current != nil {
		following := current.takeNext()
		current.setNext(previous)
		previous = current
		current = following
	}
	l.setHead(previous)
}

// Clear releases every node, iteratively, leaving an empty list.
func (l *List) Clear() {
	l.setHead(nil)
	l.size = 0
}

func (l *List) IsEmpty() bool {
	return l.head == nil
}

// Size returns the tracked node count; it does not walk the chain.
func (l *List) Size() int {
	return l.size
}

// Front returns the head node without transferring ownership.
func (l *List) Front() *Node {
	return l.head
}

func (l *List) Contains(value int) bool {
	for node := l.head; node != nil; node = node.next {
		if node.value == value {
			return true
		}
	}
	return false
}

// Values returns the values from head to tail. The list must not be mutated
// while the sequence is being consumed.
func (l *List) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}
