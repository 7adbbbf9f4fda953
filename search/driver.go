package search

import (
	"fmt"

	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/id"
)

// Transformer is the invocation signature the driver calls along a
// planned path. The search engine never holds these itself — Resolve
// below is how the facade hands one over for exactly the duration of a
// single call, keeping package search free of host-value entanglement.
type Transformer func(value interface{}) (interface{}, error)

// defaultMaxAttempts is used whenever Driver.MaxAttempts is zero.
const defaultMaxAttempts = 10

// Driver wraps Plan with a bounded retry loop: on a transformer failure,
// the failing edge is excluded and the graph is re-planned, up to
// MaxAttempts times.
type Driver struct {
	Store *edge.Store

	// Resolve maps a transformer identifier to its callable. A planned
	// edge whose identifier Resolve cannot find is a programming error,
	// not a planning outcome, and panics.
	Resolve func(id.Transformer) (Transformer, bool)

	// MaxAttempts bounds the retry loop. Zero means defaultMaxAttempts.
	MaxAttempts int
}

// Execute plans a path from q.KindIn to q.KindOut, executes each edge's
// transformer in order, and on a failing edge adds it to the skip set and
// re-plans, until success, the skip budget is exhausted, or no path
// remains.
func (d *Driver) Execute(value interface{}, q Query) (interface{}, error) {
	maxAttempts := d.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	skip := make(map[edge.Key]struct{})
	var reports []string

	for attempt := 0; attempt < maxAttempts; attempt++ {
		q.Skip = skip

		path, err := Plan(d.Store, q)
		if err != nil {
			break
		}

		result, failedEdge, failErr := d.runPath(value, path)
		if failErr == nil {
			return result, nil
		}

		reports = append(reports, fmt.Sprintf("transformer %d (kind %d -> %d): %s", failedEdge.TransformerID, failedEdge.KindIn, failedEdge.KindOut, failErr.Error()))
		skip[failedEdge.Key()] = struct{}{}
	}

	if len(reports) > 0 {
		return nil, &ExecutionFailureError{Reports: reports}
	}
	return nil, &NoPathError{KindIn: q.KindIn, KindOut: q.KindOut, WantTags: q.WantTags}
}

// runPath executes edges in order, stopping at the first failure. Edges
// executed earlier in an aborted attempt are not blamed — only the edge
// that actually failed is returned for the caller to add to the skip set.
func (d *Driver) runPath(value interface{}, path []edge.Edge) (result interface{}, failedEdge edge.Edge, err error) {
	cur := value
	for _, e := range path {
		fn, ok := d.Resolve(e.TransformerID)
		if !ok {
			panic(internalError{msg: fmt.Sprintf("no callable registered for transformer %d on edge %v", e.TransformerID, e.Key())})
		}
		out, runErr := fn(cur)
		if runErr != nil {
			return nil, e, runErr
		}
		cur = out
	}
	return cur, edge.Edge{}, nil
}
