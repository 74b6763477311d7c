// Package linked implements sequence.Sequence with a singly linked chain of nodes.
package linked

import (
	"context"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/strseq/port/sequence"
)

// Store is a singly linked sequence of strings with head and tail tracking.
// The zero value is an empty Store.
//
// Append and insertion at the head are O(1),
// any other indexed access walks the chain from the head.
type Store struct {
	head   *node
	tail   *node
	length int
	config sequence.Config
}

var _ sequence.Sequence = (*Store)(nil)

type node struct {
	data string
	next *node
}

func New(opts ...sequence.Option) *Store {
	return &Store{config: sequence.ToConfig(opts)}
}

// Len returns the number of elements in the chain.
func (s *Store) Len() int { return s.length }

func (s *Store) Read(index int) (string, error) {
	i, err := s.config.GetIndexing().Normalize(index, s.length)
	if err != nil {
		return "", err
	}
	return s.nodeAt(i).data, nil
}

func (s *Store) Append(vs ...string) {
	for _, v := range vs {
		s.append(v)
	}
}

func (s *Store) append(v string) {
	n := &node{data: strings.Clone(v)}
	if s.tail == nil {
		s.head = n
		s.tail = n
	} else {
		s.tail.next = n
		s.tail = n
	}
	s.length++
}

func (s *Store) Insert(index int, v string) error {
	if index == s.length {
		s.append(v)
		return nil
	}
	i, err := s.config.GetIndexing().Normalize(index, s.length)
	if err != nil {
		return err
	}
	n := &node{data: strings.Clone(v)}
	if i == 0 {
		n.next = s.head
		s.head = n
	} else {
		prev := s.nodeAt(i - 1)
		n.next = prev.next
		prev.next = n
	}
	s.length++
	return nil
}

func (s *Store) Remove(v string) error {
	var prev *node
	for current := s.head; current != nil; prev, current = current, current.next {
		if current.data != v {
			continue
		}
		if prev == nil {
			s.head = current.next
		} else {
			prev.next = current.next
		}
		if s.tail == current {
			s.tail = prev
		}
		current.next = nil
		current.data = ""
		s.length--
		return nil
	}
	return sequence.ErrNotFound.F("%q", v)
}

func (s *Store) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for current := s.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (s *Store) ToSlice() []string {
	vs := make([]string, 0, s.length)
	for v := range s.Values() {
		vs = append(vs, v)
	}
	return vs
}

// Close unlinks every node and releases their values.
func (s *Store) Close() error {
	if s.head == nil {
		return nil
	}
	released := s.length
	current := s.head
	for current != nil {
		next := current.next
		current.next = nil
		current.data = ""
		current = next
	}
	s.head = nil
	s.tail = nil
	s.length = 0
	if s.config.Logger != nil {
		s.config.Logger.Debug(context.Background(), "linked store closed",
			logging.Field("released", released))
	}
	return nil
}

// nodeAt expects an already normalised index.
func (s *Store) nodeAt(index int) *node {
	current := s.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}
