package list

// Node is a single element of a List. It holds an immutable value and owns its successor.
type Node struct {
	value int
	next  *Node
}

func newNode(value int) *Node {
	node := &Node{value: value}
	hooks.created(node)
	return node
}

func (node *Node) Value() int {
	return node.value
}

// Next returns the successor without transferring ownership.
// The result is only valid until the chain is mutated.
func (node *Node) Next() *Node {
	return node.next
}

// setNext installs successor into the node's slot. Whatever the slot held before,
// and everything that chain owns, is dropped unless it was taken out first.
func (node *Node) setNext(successor *Node) {
	previous := node.next
	node.next = successor
	if previous != successor {
		dropChain(previous)
	}
}

// takeNext hands the successor over to the caller and leaves the slot empty.
func (node *Node) takeNext() *Node {
	successor := node.next
	node.next = nil
	return successor
}

// dropChain releases node and every node it owns, one at a time.
func dropChain(node *Node) {
	for node != nil {
		successor := node.takeNext()
		hooks.released(node)
		node = successor
	}
}
