package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chainOf(values ...int) *Node {
	var head *Node
	for i := len(values) - 1; i >= 0; i-- {
		node := newNode(values[i])
		node.setNext(head)
		head = node
	}
	return head
}

func TestTakeNextEmptiesSlot(t *testing.T) {
	tracker := trackNodes(t)
	head := chainOf(1, 2, 3)

	rest := head.takeNext()
	assert.Nil(t, head.Next())
	assert.Equal(t, 2, rest.Value())
	assert.Equal(t, 3, rest.Next().Value())

	_, destroyed := tracker.counts()
	assert.Zero(t, destroyed, "taking a successor must not release anything")
}

func TestSetNextDropsPreviousChain(t *testing.T) {
	tracker := trackNodes(t)
	head := chainOf(1, 2, 3, 4)

	head.setNext(nil)

	constructed, destroyed := tracker.counts()
	assert.EqualValues(t, 4, constructed)
	assert.EqualValues(t, 3, destroyed)
	assert.Equal(t, 1, tracker.liveCount())
}

func TestSetNextAfterTakeKeepsChain(t *testing.T) {
	tracker := trackNodes(t)
	head := chainOf(1, 2, 3)

	rest := head.Next().takeNext()
	head.setNext(rest)

	_, destroyed := tracker.counts()
	assert.EqualValues(t, 1, destroyed)
	assert.Equal(t, 3, head.Next().Value())
	assert.Nil(t, head.Next().Next())
}

func TestSetNextSameSuccessorKeepsIt(t *testing.T) {
	tracker := trackNodes(t)
	head := chainOf(1, 2)

	head.setNext(head.Next())

	_, destroyed := tracker.counts()
	assert.Zero(t, destroyed)
	assert.Equal(t, 2, head.Next().Value())
}

func TestDropChainIsIterative(t *testing.T) {
	tracker := trackNodes(t)
	values := make([]int, 200_000)
	for i := range values {
		values[i] = i
	}

	dropChain(chainOf(values...))

	constructed, destroyed := tracker.counts()
	assert.Equal(t, constructed, destroyed)
	assert.Zero(t, tracker.liveCount())
}
