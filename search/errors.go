package search

import (
	"fmt"
	"strings"

	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

// NoPathError reports a planning failure: the graph contains no path from
// KindIn to KindOut satisfying WantTags.
type NoPathError struct {
	KindIn   id.Kind
	KindOut  id.Kind
	WantTags tagset.Set
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("search: no path from kind %d to kind %d satisfying %d tag(s)", e.KindIn, e.KindOut, e.WantTags.Len())
}

// ExecutionFailureError reports an execution failure: at least one
// transformer raised during execution and no alternative path was found
// within the retry budget. Reports holds one
// "transformer <id> (kind <in> -> <out>): <message>" entry per distinct
// failing edge, in the order the failures occurred.
type ExecutionFailureError struct {
	Reports []string
}

func (e *ExecutionFailureError) Error() string {
	summary := fmt.Sprintf("search: execution failed after %d transformer error(s)", len(e.Reports))
	if len(e.Reports) == 0 {
		return summary
	}
	return summary + "\n" + strings.Join(e.Reports, "\n")
}

// internalError marks a programming error the engine cannot recover from:
// a planned edge whose transformer callable the driver's Resolve function
// cannot find. This is never returned to a caller; it is panicked, since
// it means the registry and the graph have fallen out of sync.
type internalError struct {
	msg string
}

func (e internalError) Error() string { return "search: internal error: " + e.msg }
