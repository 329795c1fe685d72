package Treaps

import (
	"cmp"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// A node in the treap.
// The zero value is meaningful: it is the 0 size loopback used as nil.
type info[S constraints.Unsigned] struct {
	l, r, sz, h S
	pri         uint32
	rev         bool
}

// arena owns the backing storage of one treap family: every tree obtained
// by splitting a common sequence addresses nodes in the same arena by
// index. ifs[0] is the zero value, a 0 size loopback; all indexes are based
// on ifs, index 0 meaning "no node". This turns the ownership hand-off of
// split and merge into plain index reassignment: a subtree is owned by
// whichever index points at it, and nothing else.
type arena[T cmp.Ordered, S constraints.Unsigned] struct {
	ifs  []info[S]
	vs   []T // vs[i] corresponds to ifs[i+1]
	mins []T // mins[i] is the minimum value in the subtree rooted at ifs[i+1]
	free S   // beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	rng  *rand.Rand
}

func newArena[T cmp.Ordered, S constraints.Unsigned](hint S, seed uint64) *arena[T, S] {
	return &arena[T, S]{
		ifs:  make([]info[S], 1, hint+1),
		vs:   make([]T, 0, hint),
		mins: make([]T, 0, hint),
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}
}

// addFree index once.
func (u *arena[T, S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *arena[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// newNode makes a size 1 subtree holding v, reusing a free index when one
// exists. The priority comes from the arena's seeded generator, so a fixed
// seed gives a reproducible shape.
func (u *arena[T, S]) newNode(v T) S {
	i := u.popFree()
	if i == 0 {
		u.ifs = append(u.ifs, info[S]{sz: 1, pri: u.rng.Uint32()})
		u.vs = append(u.vs, v)
		u.mins = append(u.mins, v)
		return S(len(u.ifs)) - 1
	}
	u.ifs[i] = info[S]{sz: 1, pri: u.rng.Uint32()}
	u.vs[i-1], u.mins[i-1] = v, v
	return i
}

// recalc the size, height, and subtree minimum of i from its children.
// Must run bottom-up after every structural change to i, before i is handed
// back to a caller. No-op for index 0.
func (u *arena[T, S]) recalc(i S) {
	if i == 0 {
		return
	}
	n := &u.ifs[i]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
	if n.l == 0 && n.r == 0 {
		n.h = 0
		u.mins[i-1] = u.vs[i-1]
		return
	}
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
	m := u.vs[i-1]
	if n.l != 0 && u.mins[n.l-1] < m {
		m = u.mins[n.l-1]
	}
	if n.r != 0 && u.mins[n.r-1] < m {
		m = u.mins[n.r-1]
	}
	u.mins[i-1] = m
}

// propagate a pending reversal of i to its children: the flag is toggled
// onto each present child and i's children are physically swapped. Every
// function that reads or restructures i's children must call this first.
// No-op for index 0 or when no reversal is pending.
func (u *arena[T, S]) propagate(i S) {
	if i == 0 {
		return
	}
	n := &u.ifs[i]
	if !n.rev {
		return
	}
	if n.l != 0 {
		u.ifs[n.l].rev = !u.ifs[n.l].rev
	}
	if n.r != 0 {
		u.ifs[n.r].rev = !u.ifs[n.r].rev
	}
	n.l, n.r = n.r, n.l
	n.rev = false
	u.recalc(i)
}

// split the subtree rooted at i so that the first k elements in logical
// order form the first result and the rest form the second. i is consumed:
// after the call only the two returned indexes own nodes. Requires
// 0<=k<=size(i); the recursion doesn't check.
func (u *arena[T, S]) split(i, k S) (S, S) {
	if i == 0 {
		return 0, 0
	}
	u.propagate(i)
	n := &u.ifs[i]
	if u.ifs[n.l].sz >= k {
		a, b := u.split(n.l, k)
		n.l = b
		u.recalc(i)
		return a, i
	}
	a, b := u.split(n.r, k-u.ifs[n.l].sz-1)
	n.r = a
	u.recalc(i)
	return i, b
}

// merge the subtrees rooted at a and b into one whose logical order is a's
// elements followed by b's. Both inputs are consumed. This is a
// concatenation: it assumes everything under a logically precedes
// everything under b and never compares values. The higher priority root
// wins; on equal priorities b's root wins, so the result is deterministic
// under a fixed seed.
func (u *arena[T, S]) merge(a, b S) S {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	u.propagate(a)
	u.propagate(b)
	if u.ifs[a].pri > u.ifs[b].pri {
		r := u.merge(u.ifs[a].r, b)
		u.ifs[a].r = r
		u.recalc(a)
		return a
	}
	l := u.merge(a, u.ifs[b].l)
	u.ifs[b].l = l
	u.recalc(b)
	return b
}

// minIndex returns the in-order rank, within the whole tree, of the
// smallest value under i. passed counts the elements to the left of i's
// subtree; the initial call passes 0. When several elements are tied for
// smallest, the left subtree is preferred over the node and the node over
// the right subtree, so the lowest rank wins.
func (u *arena[T, S]) minIndex(i, passed S) (S, bool) {
	if i == 0 {
		return 0, false
	}
	u.propagate(i)
	n := u.ifs[i]
	idx := u.ifs[n.l].sz + passed
	if n.l != 0 && u.mins[n.l-1] == u.mins[i-1] {
		return u.minIndex(n.l, passed)
	}
	if u.vs[i-1] == u.mins[i-1] {
		return idx, true
	}
	return u.minIndex(n.r, idx+1)
}

// inOrder traversal of the subtree rooted at i, pushing pending reversals
// down as it descends so f sees the logical order. Returns false once f
// stops the walk.
func (u *arena[T, S]) inOrder(i S, f func(*T) bool) bool {
	if i == 0 {
		return true
	}
	u.propagate(i)
	n := u.ifs[i]
	if !u.inOrder(n.l, f) {
		return false
	}
	if !f(&u.vs[i-1]) {
		return false
	}
	return u.inOrder(n.r, f)
}

// corrupt reports whether any node under i violates the treap invariants:
// a child with higher priority than its parent, a stale size, or a stale
// subtree minimum. It walks the physical structure; reversal flags don't
// affect any of the checked aggregates, so pending lazies are left alone.
func (u *arena[T, S]) corrupt(i S) bool {
	if i == 0 {
		return false
	}
	n := u.ifs[i]
	if n.sz != u.ifs[n.l].sz+u.ifs[n.r].sz+1 {
		return true
	}
	m := u.vs[i-1]
	for _, c := range [2]S{n.l, n.r} {
		if c == 0 {
			continue
		}
		if u.ifs[c].pri > n.pri {
			return true
		}
		if u.mins[c-1] < m {
			m = u.mins[c-1]
		}
	}
	if u.mins[i-1] != m {
		return true
	}
	return u.corrupt(n.l) || u.corrupt(n.r)
}
