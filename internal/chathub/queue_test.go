package chathub_test

import (
	"testing"

	"anonchat/backend/internal/chathub"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFOPairing(t *testing.T) {
	// Arrange
	q := chathub.NewMatchQueue()
	a := newFakeClient("conn_a", "user_a", "Alice")
	b := newFakeClient("conn_b", "user_b", "Bob")
	c := newFakeClient("conn_c", "user_c", "Carol")

	q.AddToQueue("sports", a)
	q.AddToQueue("sports", b)
	q.AddToQueue("sports", c)

	// Act
	first, second, ok := q.Match("sports", "user_a")

	// Assert - earliest two enqueued are paired, never (A,C) or (B,C)
	assert.True(t, ok)
	assert.Equal(t, "user_a", first.GetUsername())
	assert.Equal(t, "user_b", second.GetUsername())
	assert.Equal(t, 1, q.Len("sports"), "Carol should remain queued")
}

func TestQueueDuplicateEnqueueIsNoOp(t *testing.T) {
	q := chathub.NewMatchQueue()
	a := newFakeClient("conn_a", "user_a", "Alice")

	q.AddToQueue("sports", a)
	q.AddToQueue("sports", a)

	assert.Equal(t, 1, q.Len("sports"))
	assert.False(t, q.Check("sports"))
}

func TestQueueSameUserTwoConnectionsDoNotPair(t *testing.T) {
	// Two connections of the same user are not eligible to pair with
	// each other.
	q := chathub.NewMatchQueue()
	a1 := newFakeClient("conn_a1", "user_a", "Alice")
	a2 := newFakeClient("conn_a2", "user_a", "Alice")

	q.AddToQueue("sports", a1)
	q.AddToQueue("sports", a2)

	assert.False(t, q.Check("sports"))
	_, _, ok := q.Match("sports", "user_a")
	assert.False(t, ok)
	assert.Equal(t, 2, q.Len("sports"), "ineligible entries stay queued")
}

func TestQueueSkipsSameUserHead(t *testing.T) {
	// A second connection of the head user must not block a later
	// distinct user from pairing with the head.
	q := chathub.NewMatchQueue()
	a1 := newFakeClient("conn_a1", "user_a", "Alice")
	a2 := newFakeClient("conn_a2", "user_a", "Alice")
	b := newFakeClient("conn_b", "user_b", "Bob")

	q.AddToQueue("sports", a1)
	q.AddToQueue("sports", a2)
	q.AddToQueue("sports", b)

	first, second, ok := q.Match("sports", "user_a")

	assert.True(t, ok)
	assert.Equal(t, "conn_a1", first.GetConnID())
	assert.Equal(t, "conn_b", second.GetConnID())
	assert.Equal(t, 1, q.Len("sports"))
}

func TestQueueRemoveReflectsInCheck(t *testing.T) {
	q := chathub.NewMatchQueue()
	a := newFakeClient("conn_a", "user_a", "Alice")
	b := newFakeClient("conn_b", "user_b", "Bob")

	q.AddToQueue("sports", a)
	q.AddToQueue("sports", b)
	assert.True(t, q.Check("sports"))

	// Disconnect cleanup removes the entry before any pairing decision.
	q.RemoveFromQueue("sports", b)

	assert.False(t, q.Check("sports"))
	assert.Equal(t, 1, q.Len("sports"))

	// Removing an absent entry is a no-op.
	q.RemoveFromQueue("sports", b)
	assert.Equal(t, 1, q.Len("sports"))
}

func TestQueueMatchOnShortQueueFails(t *testing.T) {
	q := chathub.NewMatchQueue()
	a := newFakeClient("conn_a", "user_a", "Alice")
	q.AddToQueue("sports", a)

	_, _, ok := q.Match("sports", "user_a")

	assert.False(t, ok)
	assert.Equal(t, 1, q.Len("sports"), "requester remains queued after a failed match")
}

func TestQueueTopicsAreIndependent(t *testing.T) {
	q := chathub.NewMatchQueue()
	a := newFakeClient("conn_a", "user_a", "Alice")
	b := newFakeClient("conn_b", "user_b", "Bob")

	q.AddToQueue("sports", a)
	q.AddToQueue("movies", b)

	assert.False(t, q.Check("sports"))
	assert.False(t, q.Check("movies"))
}
