// Package contiguous implements sequence.Sequence on top of a single growable slot buffer.
//
// Append is amortised O(1) thanks to capacity doubling,
// Read is O(1), while Insert and Remove shift the slots after the affected position.
package contiguous

import (
	"context"
	"iter"
	"strings"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/strseq/port/sequence"
)

// Store is a contiguous, capacity doubling sequence of strings.
// The zero value is an empty Store with zero capacity.
type Store struct {
	// elements holds the slots, len(elements) is the capacity.
	// Slots in [count, len(elements)) always hold the zero value.
	elements []string
	count    int
	config   sequence.Config
}

var _ sequence.Sequence = (*Store)(nil)

// New makes an empty Store with room for capacity values.
func New(capacity int, opts ...sequence.Option) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		elements: make([]string, capacity),
		config:   sequence.ToConfig(opts),
	}
}

func (s *Store) Len() int { return s.count }

// Cap returns the number of allocated slots.
func (s *Store) Cap() int { return len(s.elements) }

func (s *Store) Read(index int) (string, error) {
	i, err := s.config.GetIndexing().Normalize(index, s.count)
	if err != nil {
		return "", err
	}
	return s.elements[i], nil
}

func (s *Store) Append(vs ...string) {
	for _, v := range vs {
		s.append(v)
	}
}

func (s *Store) append(v string) {
	if s.count == len(s.elements) {
		s.grow()
	}
	s.elements[s.count] = strings.Clone(v)
	s.count++
}

func (s *Store) Insert(index int, v string) error {
	if index == s.count {
		s.append(v)
		return nil
	}
	i, err := s.config.GetIndexing().Normalize(index, s.count)
	if err != nil {
		return err
	}
	if s.count == len(s.elements) {
		s.grow()
	}
	for j := s.count; i < j; j-- {
		s.elements[j] = s.elements[j-1]
	}
	s.elements[i] = strings.Clone(v)
	s.count++
	return nil
}

func (s *Store) Remove(v string) error {
	found := -1
	for i := 0; i < s.count; i++ {
		if s.elements[i] == v {
			found = i
			break
		}
	}
	if found == -1 {
		return sequence.ErrNotFound.F("%q", v)
	}
	for j := found; j < s.count-1; j++ {
		s.elements[j] = s.elements[j+1]
	}
	s.count--
	s.elements[s.count] = ""
	return nil
}

func (s *Store) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for i := 0; i < s.count; i++ {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

func (s *Store) ToSlice() []string {
	out := make([]string, s.count)
	copy(out, s.elements[:s.count])
	return out
}

// Close releases the live values and drops the slot buffer.
// The Store can be used again afterwards, and it starts from zero capacity.
func (s *Store) Close() error {
	if s.elements == nil {
		return nil
	}
	released := s.count
	for i := 0; i < s.count; i++ {
		s.elements[i] = ""
	}
	s.elements = nil
	s.count = 0
	s.debug("contiguous store closed", logging.Field("released", released))
	return nil
}

// grow doubles the slot buffer.
// Only the slot references are copied, the strings themselves are shared.
func (s *Store) grow() {
	newCap := len(s.elements) * 2
	if newCap == 0 {
		newCap = 1
	}
	elements := make([]string, newCap)
	copy(elements, s.elements[:s.count])
	s.debug("contiguous store grown",
		logging.Field("from", len(s.elements)),
		logging.Field("to", newCap))
	s.elements = elements
}

func (s *Store) debug(msg string, ds ...logging.Detail) {
	if s.config.Logger == nil {
		return
	}
	s.config.Logger.Debug(context.Background(), msg, ds...)
}
