package Treaps

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Treap is an implicit treap: a randomized balanced binary tree indexed by
// position rather than key. It supports splitting at a position, merging
// two position-ordered trees, lazy range reversal, and locating the index
// of the minimum element, all in expected O(log n). T is the element type,
// S is the type used for sizes and node indexes; S should be a wide
// upperbound for the size of the sequence. The worst case depth is O(n)
// when the random priorities degenerate, but the expected depth is
// O(log n) since priorities are drawn i.i.d.
//
// A Treap is a view: a root index plus a pointer to the shared arena that
// stores the nodes of its whole split/merge family. Split and Merge consume
// their inputs; the consumed views are emptied so accidental reuse reads an
// empty tree instead of corrupting the structure. A Treap isn't safe for
// concurrent use: even read paths push reversal flags down.
type Treap[T cmp.Ordered, S constraints.Unsigned] struct {
	a    *arena[T, S]
	root S
}

// New returns an empty Treap with storage preallocated for hint elements.
// seed fixes the priority generator, so an identical sequence of operations
// on an identical seed yields an identical tree shape.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, seed uint64) *Treap[T, S] {
	return &Treap[T, S]{a: newArena[T, S](hint, seed)}
}

// From builds a Treap holding vs in order, by merging one singleton per
// element onto the right end.
// Time: expected O(n log n).
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, seed uint64) *Treap[T, S] {
	u := New[T, S](S(len(vs)), seed)
	for _, v := range vs {
		u.root = u.a.merge(u.root, u.a.newNode(v))
	}
	return u
}

// Size of the sequence.
// Time: O(1)
func (u *Treap[T, S]) Size() S {
	return u.a.ifs[u.root].sz
}

// Height of the tree, 0 for an empty or single element tree. Diagnostic
// only; not load bearing for correctness.
func (u *Treap[T, S]) Height() S {
	return u.a.ifs[u.root].h
}

// Push appends v at the end of the sequence.
// Time: expected O(log n)
func (u *Treap[T, S]) Push(v T) {
	u.root = u.a.merge(u.root, u.a.newNode(v))
}

// Split divides u at position k: the returned trees hold the first k
// elements and the remaining Size()-k elements, in order. u is consumed
// and left empty; both results keep addressing u's arena. Requires
// 0<=k<=Size(), panicking with InvalidIndexError otherwise.
// Time: expected O(log n)
func (u *Treap[T, S]) Split(k S) (*Treap[T, S], *Treap[T, S]) {
	if k > u.Size() {
		panic(InvalidIndexError{uint(k), uint(u.Size())})
	}
	l, r := u.a.split(u.root, k)
	u.root = 0
	return &Treap[T, S]{u.a, l}, &Treap[T, S]{u.a, r}
}

// Merge concatenates l's elements followed by r's into one tree. Both
// inputs are consumed and left empty. l and r must belong to the same
// arena, i.e. descend from splits of a common sequence; Merge panics with
// ArenaMismatchError otherwise.
// Time: expected O(log n)
func Merge[T cmp.Ordered, S constraints.Unsigned](l, r *Treap[T, S]) *Treap[T, S] {
	if l.a != r.a {
		panic(ArenaMismatchError{})
	}
	n := l.a.merge(l.root, r.root)
	l.root, r.root = 0, 0
	return &Treap[T, S]{l.a, n}
}

// ReverseRange reverses the logical order of positions [from, to], both
// inclusive, in place. The work is O(log n) regardless of the segment
// length: the segment is split out, a reversal flag is toggled on its root,
// and the pieces are merged back; the flag is pushed down lazily the next
// time an operation descends into the segment. Requires from<=to<Size(),
// panicking with InvalidIndexError otherwise.
func (u *Treap[T, S]) ReverseRange(from, to S) {
	if to >= u.Size() {
		panic(InvalidIndexError{uint(to), uint(u.Size())})
	}
	if from > to {
		panic(InvalidIndexError{uint(from), uint(u.Size())})
	}
	before, rest := u.a.split(u.root, from)
	seg, after := u.a.split(rest, to-from+1)
	u.a.ifs[seg].rev = !u.a.ifs[seg].rev
	u.root = u.a.merge(u.a.merge(before, seg), after)
}

// RemoveFirst deletes the element at position 0, returning its index to
// the arena's free list. Returns false if u was already empty.
// Time: expected O(log n)
func (u *Treap[T, S]) RemoveFirst() bool {
	if u.Size() == 0 {
		return false
	}
	first, rest := u.a.split(u.root, 1)
	u.a.addFree(first)
	u.root = rest
	return true
}

// MinIndex returns the 0-based position of the smallest element, using the
// per-subtree minimum aggregate to descend one child per level. If several
// elements are tied for smallest, the lowest position is returned. The
// second return value is false iff u is empty.
// Time: expected O(log n)
func (u *Treap[T, S]) MinIndex() (S, bool) {
	return u.a.minIndex(u.root, 0)
}

// InOrder calls f on every element in logical order until f returns false,
// applying pending reversals on the way down. The element pointer is valid
// only during the call. u must not be modified during the iteration.
// Time: O(n)
func (u *Treap[T, S]) InOrder(f func(*T) bool) {
	u.a.inOrder(u.root, f)
}

// Values copies the sequence into a slice in logical order.
// Time: O(n)
func (u *Treap[T, S]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.a.inOrder(u.root, func(v *T) bool {
		vs = append(vs, *v)
		return true
	})
	return vs
}

// Corrupt reports whether some node violates the heap property on
// priorities or carries a stale size or subtree minimum.
func (u *Treap[T, S]) Corrupt() bool {
	return u.a.corrupt(u.root)
}
