package Sorts

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

// naive reference: literally reverse the prefix and pop the front.
func naive(perm []int) []int {
	s := slices.Clone(perm)
	out := make([]int, len(perm))
	for step := 0; len(s) > 0; step++ {
		idx := slices.Index(s, slices.Min(s))
		out[step] = idx + step + 1
		for i, j := 0, idx; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
		s = s[1:]
	}
	return out
}

func TestReversort_Golden(t *testing.T) {
	got := Reversort([]int{4, 2, 1, 3}, 0)
	if want := []int{3, 2, 4, 4}; !slices.Equal(got, want) {
		t.Errorf("Reversort(4 2 1 3) = %v, want %v", got, want)
	}
}

func TestReversort_Random(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 100, 5000} {
		for range 5 {
			perm := rg.Perm(n)
			for i := range perm {
				perm[i]++ // permutation of 1..n
			}
			if got, want := Reversort(perm, rg.Uint64()), naive(perm); !slices.Equal(got, want) {
				t.Fatalf("n=%d: got %v, want %v for %v", n, got, want, perm)
			}
		}
	}
}

func TestReversort_Empty(t *testing.T) {
	if got := Reversort(nil, 0); len(got) != 0 {
		t.Errorf("Reversort(nil) = %v, want empty", got)
	}
}

func TestReversort_SeedIndependent(t *testing.T) {
	perm := rg.Perm(1000)
	for i := range perm {
		perm[i]++
	}
	want := Reversort(perm, 0)
	for seed := uint64(1); seed < 8; seed++ {
		if got := Reversort(perm, seed); !slices.Equal(got, want) {
			t.Fatalf("seed %d changed the reported positions", seed)
		}
	}
}

func TestReversort_Sorted(t *testing.T) {
	// an already ascending input selects position step+1 at every step
	perm := make([]int, 100)
	for i := range perm {
		perm[i] = i + 1
	}
	for i, p := range Reversort(perm, 0) {
		if p != i+1 {
			t.Fatalf("step %d reported %d, want %d", i, p, i+1)
		}
	}
}
