package search

import (
	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/tagset"
)

// State is an immutable frontier record: the edge just traversed to
// arrive here, the accumulated raw cost along the path, the score used to
// order the frontier, a shared link to the predecessor state (nil for a
// root), and the tag set reached after this edge. Multiple states may
// share the same parent; there are no joins, only a tree of states rooted
// at the search's seeds.
type State struct {
	Priority        int64
	AccumulatedCost int64
	Edge            edge.Edge
	Parent          *State
	Tags            tagset.Set
}

// Chain walks self, then parent, then so on to the root, returning the
// edges in that order. For a forward state this is target-to-source
// order; for a backward state this is source-to-target order (see
// reconstruct.go).
func (s *State) Chain() []edge.Edge {
	out := make([]edge.Edge, 0, 4)
	for cur := s; cur != nil; cur = cur.Parent {
		out = append(out, cur.Edge)
	}
	return out
}

// preTags returns the tag context that was available immediately before
// this state's edge was traversed: the parent's tags, or seedTags if this
// state is a root. This pre-entry tag set is what goes into the visited
// index and the meeting-test compatibility check, rather than the
// post-edge tags, since two searches can only be spliced together at a
// point where what one side had before its edge matches what the other
// side has after its own.
func (s *State) preTags(seedTags tagset.Set) tagset.Set {
	if s.Parent != nil {
		return s.Parent.Tags
	}
	return seedTags
}

func reverseEdges(edges []edge.Edge) []edge.Edge {
	out := make([]edge.Edge, len(edges))
	for i, e := range edges {
		out[len(edges)-1-i] = e
	}
	return out
}
