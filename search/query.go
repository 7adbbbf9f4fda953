package search

import (
	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

// Query bundles the inputs to Plan.
type Query struct {
	KindIn   id.Kind
	HaveTags tagset.Set
	KindOut  id.Kind
	WantTags tagset.Set

	// Skip holds edges Plan must not traverse; populated by Driver between
	// retry attempts. A nil Skip behaves as empty.
	Skip map[edge.Key]struct{}
}

func (q Query) skipped(e edge.Edge) bool {
	if q.Skip == nil {
		return false
	}
	_, ok := q.Skip[e.Key()]
	return ok
}
