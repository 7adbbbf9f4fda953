package search

import "github.com/internetimagery/transmute/edge"

// reconstructForwardWins builds the final path when the forward searcher
// popped the meeting state (fwd) and found a compatible backward
// counterpart (bwd) recorded for the same edge: the forward state's
// ancestors (excluding the meeting state itself, reversed into source
// order) followed by the backward state's own chain (which already reads
// in source-to-target order and includes the meeting edge once).
func reconstructForwardWins(fwd, bwd *State) []edge.Edge {
	var before []edge.Edge
	if fwd.Parent != nil {
		before = reverseEdges(fwd.Parent.Chain())
	}
	after := bwd.Chain()
	return append(before, after...)
}

// reconstructBackwardWins builds the final path when the backward
// searcher popped the meeting state (bwd) and found a compatible forward
// counterpart (fwd) recorded for the same edge: the forward state's own
// chain reversed into source order (including the meeting edge once)
// followed by the backward state's ancestors (excluding the meeting
// state, already in source-to-target order).
func reconstructBackwardWins(fwd, bwd *State) []edge.Edge {
	before := reverseEdges(fwd.Chain())
	var after []edge.Edge
	if bwd.Parent != nil {
		after = bwd.Parent.Chain()
	}
	return append(before, after...)
}

// reconstructForwardGoal builds the final path when a forward state
// itself satisfies the goal test: its chain reversed into source order.
func reconstructForwardGoal(fwd *State) []edge.Edge {
	return reverseEdges(fwd.Chain())
}

// reconstructBackwardGoal builds the final path when a backward state
// itself satisfies the goal test: its chain is already in source order.
func reconstructBackwardGoal(bwd *State) []edge.Edge {
	return bwd.Chain()
}
