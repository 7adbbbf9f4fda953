// Package tagset implements the canonicalised tag set used throughout the
// planner: an ordered, deduplicated collection of id.Tag values with a
// deterministic content hash. Two tag sets containing the same tags always
// compare equal and hash identically regardless of insertion order, which
// is what lets the searcher ask "have we visited this edge under the same
// tag context before?" (see the visitedIndex type in package search).
//
// The hashing strategy — sort, then fold into an FNV-64 accumulator — is
// the same one used by tag-store implementations elsewhere for collapsing
// an unordered tag collection into a single comparable value.
package tagset

import (
	"hash/fnv"
	"sort"

	"github.com/internetimagery/transmute/id"
)

// Hash is the deterministic content hash of a Set.
type Hash uint64

// Set is an immutable-after-construction, sorted, deduplicated collection
// of id.Tag. The zero value is the empty set.
type Set struct {
	tags []id.Tag
	hash Hash
}

// New canonicalises tags into a Set: sorted ascending, duplicates removed,
// content hash precomputed. O(n log n).
func New(tags ...id.Tag) Set {
	if len(tags) == 0 {
		return Set{hash: emptyHash()}
	}

	cp := make([]id.Tag, len(tags))
	copy(cp, tags)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	// Dedupe in place now that cp is sorted.
	out := cp[:1]
	for _, t := range cp[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}

	return Set{tags: out, hash: hashTags(out)}
}

func emptyHash() Hash {
	h := fnv.New64a()
	return Hash(h.Sum64())
}

func hashTags(sorted []id.Tag) Hash {
	h := fnv.New64a()
	var buf [8]byte
	for _, t := range sorted {
		v := uint64(t)
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return Hash(h.Sum64())
}

// Len reports the number of distinct tags in the set.
func (s Set) Len() int { return len(s.tags) }

// Tags returns the sorted, deduplicated tags. The caller must not mutate
// the returned slice.
func (s Set) Tags() []id.Tag { return s.tags }

// Hash returns the set's precomputed content hash.
func (s Set) Hash() Hash {
	if len(s.tags) == 0 {
		// The zero value carries no precomputed hash; it is the empty set.
		return emptyHash()
	}
	return s.hash
}

// Contains reports whether t is a member of s.
func (s Set) Contains(t id.Tag) bool {
	i := sort.Search(len(s.tags), func(i int) bool { return s.tags[i] >= t })
	return i < len(s.tags) && s.tags[i] == t
}

// Subset reports whether every tag in s is also in other.
func (s Set) Subset(other Set) bool {
	if s.Len() > other.Len() {
		return false
	}
	for _, t := range s.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Superset reports whether every tag in other is also in s.
func (s Set) Superset(other Set) bool { return other.Subset(s) }

// Union returns the set of tags present in either s or other.
func (s Set) Union(other Set) Set {
	merged := make([]id.Tag, 0, s.Len()+other.Len())
	merged = append(merged, s.tags...)
	merged = append(merged, other.tags...)
	return New(merged...)
}

// Difference returns the tags in s that are not in other.
func (s Set) Difference(other Set) Set {
	if s.Len() == 0 || other.Len() == 0 {
		return s
	}
	out := make([]id.Tag, 0, s.Len())
	for _, t := range s.tags {
		if !other.Contains(t) {
			out = append(out, t)
		}
	}
	return New(out...)
}

// Intersect returns the tags present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	out := make([]id.Tag, 0, small.Len())
	for _, t := range small.tags {
		if big.Contains(t) {
			out = append(out, t)
		}
	}
	return New(out...)
}
