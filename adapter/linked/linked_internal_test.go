package linked

import (
	"testing"

	"go.llib.dev/testcase/assert"
)

func TestStore_invariants(t *testing.T) {
	s := New()
	s.Append("a", "b", "c")
	assert.NoError(t, s.Insert(0, "x"))
	assert.NoError(t, s.Remove("c"))

	var (
		reachable int
		last      *node
	)
	for n := s.head; n != nil; n = n.next {
		reachable++
		last = n
	}
	assert.Equal(t, s.length, reachable)
	assert.True(t, s.tail == last)
	assert.Nil(t, s.tail.next)
}

func TestStore_Close_unlinksEveryNode(t *testing.T) {
	s := New()
	s.Append("a", "b", "c")
	nodes := []*node{s.head, s.head.next, s.tail}

	assert.NoError(t, s.Close())
	assert.Nil(t, s.head)
	assert.Nil(t, s.tail)
	assert.Equal(t, 0, s.length)
	for _, n := range nodes {
		assert.Nil(t, n.next)
		assert.Equal(t, "", n.data)
	}
}
