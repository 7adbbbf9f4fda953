// Package search implements the bidirectional, cost-ordered searcher over
// a transformer graph (edge.Store) and the retry-loop planner driver built
// on top of it: frontier state, path reconstruction, the bidirectional
// searcher, and the planner driver. It has no knowledge of host values
// beyond the opaque identifiers in package id and the tag sets in package
// tagset — executing a planned path is the Driver's job, and even the
// Driver only calls back into a Resolve function the facade supplies (see
// driver.go).
package search

import (
	"container/heap"

	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/tagset"
)

// visitedIndex records, per edge, the pre-entry tag-set contexts under
// which that edge has already been popped off a frontier. An edge may be
// expanded again once per distinct context, since the same edge reached
// with a different tag set is a genuinely different search state.
type visitedIndex map[edge.Key]map[tagset.Hash]*State

func recordVisited(idx visitedIndex, state *State, seedTags tagset.Set) {
	key := state.Edge.Key()
	h := state.preTags(seedTags).Hash()
	bucket, ok := idx[key]
	if !ok {
		bucket = make(map[tagset.Hash]*State, 1)
		idx[key] = bucket
	}
	bucket[h] = state
}

func alreadyVisited(idx visitedIndex, e edge.Edge, tagsHash tagset.Hash) bool {
	bucket, ok := idx[e.Key()]
	if !ok {
		return false
	}
	_, seen := bucket[tagsHash]
	return seen
}

// newTagsForward applies the forward tag-update rule: the traversed edge
// consumes its required tags and contributes its produced tags.
func newTagsForward(parentTags tagset.Set, e edge.Edge) tagset.Set {
	return parentTags.Difference(e.RequiredInTags).Union(e.ProducedOutTags)
}

// newTagsBackward applies the mirror image of newTagsForward: backward
// expansion reasons about what must have been true before the edge, given
// what is needed after it.
func newTagsBackward(parentTags tagset.Set, e edge.Edge) tagset.Set {
	return parentTags.Difference(e.ProducedOutTags).Union(e.RequiredInTags)
}

// Plan runs the bidirectional search and returns the cheapest-found chain
// of edges from q.KindIn to q.KindOut satisfying q.WantTags, or a
// *NoPathError.
func Plan(store *edge.Store, q Query) ([]edge.Edge, error) {
	forwardPQ := &priorityQueue{}
	backwardPQ := &priorityQueue{}
	heap.Init(forwardPQ)
	heap.Init(backwardPQ)

	forwardVisited := visitedIndex{}
	backwardVisited := visitedIndex{}

	seedForward(store, q, forwardPQ)
	seedBackward(store, q, backwardPQ)

	for forwardPQ.Len() > 0 || backwardPQ.Len() > 0 {
		popForward := choosePopForward(forwardPQ.Len(), backwardPQ.Len())

		if popForward {
			state := heap.Pop(forwardPQ).(*State)
			if q.skipped(state.Edge) {
				continue
			}
			if state.Edge.KindOut == q.KindOut && state.Tags.Superset(q.WantTags) {
				return reconstructForwardGoal(state), nil
			}
			if bwdBucket, ok := backwardVisited[state.Edge.Key()]; ok {
				pre := state.preTags(q.HaveTags)
				for _, bwd := range bwdBucket {
					if bwd.Tags.Subset(pre) {
						return reconstructForwardWins(state, bwd), nil
					}
				}
			}
			recordVisited(forwardVisited, state, q.HaveTags)
			expandForward(store, state, forwardPQ, forwardVisited)
		} else {
			state := heap.Pop(backwardPQ).(*State)
			if q.skipped(state.Edge) {
				continue
			}
			if state.Edge.KindIn == q.KindIn && state.Tags.Subset(q.HaveTags) {
				return reconstructBackwardGoal(state), nil
			}
			if fwdBucket, ok := forwardVisited[state.Edge.Key()]; ok {
				for _, fwd := range fwdBucket {
					if state.Tags.Subset(fwd.preTags(q.HaveTags)) {
						return reconstructBackwardWins(fwd, state), nil
					}
				}
			}
			recordVisited(backwardVisited, state, q.WantTags)
			expandBackward(store, state, backwardPQ, backwardVisited)
		}
	}

	return nil, &NoPathError{KindIn: q.KindIn, KindOut: q.KindOut, WantTags: q.WantTags}
}

// choosePopForward picks the smaller non-empty frontier to expand next,
// keeping the two searches roughly balanced so neither runs away with the
// other's work; ties, and the case where forward is empty, go to backward.
func choosePopForward(forwardLen, backwardLen int) bool {
	switch {
	case forwardLen > 0 && backwardLen > 0:
		return forwardLen < backwardLen
	case forwardLen > 0:
		return true
	default:
		return false
	}
}

func seedForward(store *edge.Store, q Query, pq *priorityQueue) {
	for _, e := range store.OutEdges(q.KindIn) {
		if !e.RequiredInTags.Subset(q.HaveTags) {
			// Unsatisfiable at seed time and can never become satisfiable
			// later — there is no earlier context for a root.
			continue
		}
		tags := newTagsForward(q.HaveTags, e)
		multiplier := int64(1 + q.HaveTags.Len() - e.RequiredInTags.Len())
		heap.Push(pq, &State{
			Priority:        e.Cost * multiplier,
			AccumulatedCost: e.Cost,
			Edge:            e,
			Tags:            tags,
		})
	}
}

func seedBackward(store *edge.Store, q Query, pq *priorityQueue) {
	candidates := store.InEdges(q.KindOut)

	maxRequired := 0
	for _, e := range candidates {
		if n := e.RequiredInTags.Len(); n > maxRequired {
			maxRequired = n
		}
	}
	v := maxRequired + q.WantTags.Len()

	for _, e := range candidates {
		// No requirement filter here: unmet requirements may be satisfied
		// by edges discovered deeper in the path.
		tags := newTagsBackward(q.WantTags, e)
		multiplier := int64(1 + v - e.RequiredInTags.Len() - e.ProducedOutTags.Intersect(q.WantTags).Len())
		heap.Push(pq, &State{
			Priority:        e.Cost * multiplier,
			AccumulatedCost: e.Cost,
			Edge:            e,
			Tags:            tags,
		})
	}
}

func expandForward(store *edge.Store, state *State, pq *priorityQueue, visited visitedIndex) {
	currentTags := state.Tags
	currentHash := currentTags.Hash()
	t := currentTags.Len()

	for _, e := range store.OutEdges(state.Edge.KindOut) {
		if alreadyVisited(visited, e, currentHash) {
			continue
		}
		if !e.RequiredInTags.Subset(currentTags) {
			continue
		}
		c := e.RequiredInTags.Len()
		heuristic := int64(1 + t - c)
		heap.Push(pq, &State{
			Priority:        state.Priority + e.Cost*heuristic,
			AccumulatedCost: state.AccumulatedCost + e.Cost,
			Edge:            e,
			Parent:          state,
			Tags:            newTagsForward(currentTags, e),
		})
	}
}

func expandBackward(store *edge.Store, state *State, pq *priorityQueue, visited visitedIndex) {
	currentTags := state.Tags
	currentHash := currentTags.Hash()
	candidates := store.InEdges(state.Edge.KindIn)

	t := 0
	for _, e := range candidates {
		if n := e.ProducedOutTags.Len(); n > t {
			t = n
		}
	}

	for _, e := range candidates {
		if alreadyVisited(visited, e, currentHash) {
			continue
		}
		// Backward does not filter on requirements at expansion time:
		// they may be satisfied by edges discovered closer to the source.
		c := e.ProducedOutTags.Intersect(currentTags).Len() + e.RequiredInTags.Len()
		heuristic := int64(1 + t - c)
		heap.Push(pq, &State{
			Priority:        state.Priority + e.Cost*heuristic,
			AccumulatedCost: state.AccumulatedCost + e.Cost,
			Edge:            e,
			Parent:          state,
			Tags:            newTagsBackward(currentTags, e),
		})
	}
}
