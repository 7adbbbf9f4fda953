package tagset

import (
	"testing"

	"github.com/internetimagery/transmute/id"
)

func TestNew_SortsAndDedupes(t *testing.T) {
	s := New(3, 1, 2, 1, 3)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got := s.Tags()
	want := []id.Tag{1, 2, 3}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("Tags()[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestNew_OrderIndependentHash(t *testing.T) {
	a := New(10, 20, 30)
	b := New(30, 10, 20)
	if a.Hash() != b.Hash() {
		t.Fatalf("hash differs for same tags in different order: %v != %v", a.Hash(), b.Hash())
	}
}

func TestEmptySet(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if New().Hash() != s.Hash() {
		t.Fatalf("two empty sets should hash identically")
	}
}

func TestSubsetSuperset(t *testing.T) {
	small := New(1, 2)
	big := New(1, 2, 3)
	if !small.Subset(big) {
		t.Fatalf("expected %v to be a subset of %v", small, big)
	}
	if !big.Superset(small) {
		t.Fatalf("expected %v to be a superset of %v", big, small)
	}
	if big.Subset(small) {
		t.Fatalf("did not expect %v to be a subset of %v", big, small)
	}
}

func TestUnionDifferenceIntersect(t *testing.T) {
	a := New(1, 2, 3)
	b := New(2, 3, 4)

	union := a.Union(b)
	if union.Len() != 4 {
		t.Fatalf("Union Len() = %d, want 4", union.Len())
	}

	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(1) {
		t.Fatalf("Difference = %v, want {1}", diff.Tags())
	}

	inter := a.Intersect(b)
	if inter.Len() != 2 || !inter.Contains(2) || !inter.Contains(3) {
		t.Fatalf("Intersect = %v, want {2,3}", inter.Tags())
	}
}

func TestContains(t *testing.T) {
	s := New(5, 10, 15)
	if !s.Contains(10) {
		t.Fatalf("expected set to contain 10")
	}
	if s.Contains(11) {
		t.Fatalf("did not expect set to contain 11")
	}
}
