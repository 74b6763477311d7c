// Package sequence defines the port of an ordered, index addressable collection of text values.
//
// Implementations live under the adapter directory,
// and each of them must satisfy the behaviour described in sequencecontract.
package sequence

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrOutOfRange is returned when a requested index can't be normalised into a live position.
	ErrOutOfRange errorkit.Error = "index out of range"
	// ErrNotFound is returned when the value to remove is not present in the sequence.
	ErrNotFound errorkit.Error = "item not found"
)

//go:generate mockgen -destination sequencemock/sequence_mock.go -package sequencemock . Sequence

// Sequence is an ordered collection of text values.
//
// A Sequence owns the values it stores.
// The values are copied on entry, so the caller keeps its own.
type Sequence interface {
	// Len returns the number of live values.
	Len() int
	// Read returns the value found at the given index.
	// The index is normalised with the sequence's Indexing policy,
	// and ErrOutOfRange is returned when that fails.
	Read(index int) (string, error)
	// Append adds the values to the end of the sequence, in order.
	Append(vs ...string)
	// Insert places the value at the given index,
	// and shifts every value at or after the index by one position.
	// Inserting at index == Len() is equal to an Append.
	Insert(index int, v string) error
	// Remove removes the first value that equals to v.
	// ErrNotFound is returned when v is absent.
	Remove(v string) error
	// Values iterates over the live values in order.
	Values() iter.Seq[string]
	// Close releases every stored value and the backing storage.
	// After Close, the sequence is empty.
	Close() error
}

// Capacitor is implemented by sequences that preallocate storage.
type Capacitor interface {
	Cap() int
}

type SliceConvertable interface {
	ToSlice() []string
}
