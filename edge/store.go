package edge

import (
	"sync"

	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

// Store holds the registered transformer edges, indexed two ways for the
// bidirectional searcher (bySource, byTarget) plus a by-key index used for
// idempotent registration. The store owns its edges for the lifetime of
// the planner and grows monotonically — there is no delete operation.
//
// Store is safe for concurrent reads. Add takes the write lock; a
// planning call only ever calls OutEdges/InEdges, which take the read
// lock, so registration and planning may overlap at the store level.
type Store struct {
	mu       sync.RWMutex
	bySource map[id.Kind][]Edge
	byTarget map[id.Kind][]Edge
	byKey    map[Key]Edge
}

// NewStore returns an empty edge store.
func NewStore() *Store {
	return &Store{
		bySource: make(map[id.Kind][]Edge),
		byTarget: make(map[id.Kind][]Edge),
		byKey:    make(map[Key]Edge),
	}
}

// Add constructs an Edge from its six fields and inserts it into the
// bySource and byTarget buckets. A second Add with an identical tuple is a
// no-op (idempotent registration) and returns the existing Edge.
func (s *Store) Add(cost int64, kindIn id.Kind, requiredIn tagset.Set, kindOut id.Kind, producedOut tagset.Set, transformerID id.Transformer) Edge {
	e := Edge{
		Cost:            cost,
		KindIn:          kindIn,
		KindOut:         kindOut,
		TransformerID:   transformerID,
		RequiredInTags:  requiredIn,
		ProducedOutTags: producedOut,
	}
	key := e.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byKey[key]; ok {
		return existing
	}
	s.byKey[key] = e
	s.bySource[kindIn] = append(s.bySource[kindIn], e)
	s.byTarget[kindOut] = append(s.byTarget[kindOut], e)
	return e
}

// OutEdges returns the edges whose KindIn equals kindIn. No ordering is
// guaranteed; the caller imposes ordering via its own frontier.
func (s *Store) OutEdges(kindIn id.Kind) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := s.bySource[kindIn]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// InEdges returns the edges whose KindOut equals kindOut.
func (s *Store) InEdges(kindOut id.Kind) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := s.byTarget[kindOut]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}
