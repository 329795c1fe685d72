package Sorts

import (
	"github.com/jpetreski19/Data-Structures/Treaps"
)

// Reversort sorts a permutation of n distinct values by selection through
// prefix reversals. At each step the globally smallest remaining value is
// located, the prefix up to and including it is reversed so it lands at the
// front, and the front element is removed. The returned slice holds, per
// step, the 1-based position of the selected value within the original
// sequence, adjusted for the already removed prefix — the classic output of
// the task. After n steps the sequence is empty.
//
// seed fixes the treap's priority generator; the reported positions don't
// depend on it, only the internal tree shape does.
// Time: expected O(n log n).
func Reversort(perm []int, seed uint64) []int {
	t := Treaps.From[int, uint32](perm, seed)
	out := make([]int, len(perm))
	for step := range perm {
		idx, _ := t.MinIndex()
		out[step] = int(idx) + step + 1
		if idx != 0 {
			t.ReverseRange(0, idx)
		}
		t.RemoveFirst()
	}
	return out
}
