package Treaps

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sequence represents a positionally indexed collection: elements are
// addressed by their 0-based rank in the current logical order, not by key.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined. For example, calling MinIndex on an empty
// sequence returns (x S, false); the value of x should not be used.
// Methods that take indexes treat out-of-range indexes as programming
// errors and panic with InvalidIndexError rather than truncating; see the
// individual methods for the exact preconditions.
type Sequence[T any, S constraints.Unsigned] interface {
	//Size of the sequence.
	Size() S
	//MinIndex returns the 0-based index of the smallest element. If several
	//elements are tied for smallest, the lowest index is returned.
	MinIndex() (S, bool)
	//ReverseRange reverses the logical order of the elements at positions
	//[from, to], both inclusive. Requires from<=to<Size().
	ReverseRange(from, to S)
	//RemoveFirst deletes the element at position 0, returning false if the
	//sequence was already empty.
	RemoveFirst() bool
	//InOrder calls f on every element in logical order until f returns
	//false. The sequence must not be modified during the iteration.
	InOrder(f func(*T) bool)
	//Values copies the sequence into a slice in logical order.
	Values() []T
}

// InvalidIndexError reports an index argument that violates a method's
// precondition. It is delivered by panic: an out-of-range index is a bug in
// the caller, not a runtime condition to recover from.
type InvalidIndexError struct {
	Index, Size uint
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("index %d out of range for sequence of size %d", e.Index, e.Size)
}

// ArenaMismatchError reports an attempt to merge two treaps that don't
// share a node arena. Only trees obtained by splitting a common sequence
// can be merged back together. Delivered by panic.
type ArenaMismatchError struct {
}

func (e ArenaMismatchError) Error() string {
	return "treaps from different arenas cannot be merged"
}
