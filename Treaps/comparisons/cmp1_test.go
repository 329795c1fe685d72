package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/jpetreski19/Data-Structures/Treaps"
)

// compares the selection workload (insert n elements, then repeatedly take
// out the smallest) against https://github.com/google/btree,
// https://github.com/petar/GoLLRB and the red-black tree of
// https://github.com/emirpasic/gods. Those are key-ordered structures with
// a native delete-min, while the treap locates the minimum by rank and cuts
// it off the front after a prefix reversal, so it is doing strictly more
// work per extraction; the comparison bounds the price of keeping the
// elements positionally ordered.
const benchmarkItemCount = 1 << 14

var rg = *rand.New(rand.NewSource(0))

func setupPerm(b *testing.B) []int {
	b.Helper()
	return rg.Perm(benchmarkItemCount)
}

func BenchmarkDrainTreap(b *testing.B) {
	all := setupPerm(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		t := Treaps.From[int, uint32](all, 0)
		b.StartTimer()
		for t.Size() > 0 {
			if idx, _ := t.MinIndex(); idx != 0 {
				t.ReverseRange(0, idx)
			}
			t.RemoveFirst()
		}
	}
}

func BenchmarkDrainBTree(b *testing.B) {
	all := setupPerm(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		t := btree.NewOrderedG[int](32)
		for _, v := range all {
			t.ReplaceOrInsert(v)
		}
		b.StartTimer()
		for t.Len() > 0 {
			if _, ok := t.DeleteMin(); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkDrainLLRB(b *testing.B) {
	all := setupPerm(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, v := range all {
			t.InsertNoReplace(llrb.Int(v))
		}
		b.StartTimer()
		for t.Len() > 0 {
			if t.DeleteMin() == nil {
				b.Fail()
			}
		}
	}
}

func BenchmarkDrainRedBlack(b *testing.B) {
	all := setupPerm(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		t := redblacktree.NewWithIntComparator()
		for _, v := range all {
			t.Put(v, v)
		}
		b.StartTimer()
		for t.Size() > 0 {
			t.Remove(t.Left().Key)
		}
	}
}
