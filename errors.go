package transmute

import (
	"errors"

	"github.com/internetimagery/transmute/search"
)

// Sentinel errors for registration mistakes.
var (
	// ErrNilTransformer indicates RegisterTransformer was called with a
	// nil callable.
	ErrNilTransformer = errors.New("transmute: nil transformer")

	// ErrNilDetector indicates RegisterDetector was called with a nil
	// callable.
	ErrNilDetector = errors.New("transmute: nil detector")
)

// LackingReagentError is the planning failure Transform returns when the
// graph contains no path from the resolved input kind to the requested
// output kind satisfying the requested tags. It is a type alias for
// search.NoPathError so callers can use errors.As against either name.
type LackingReagentError = search.NoPathError

// ExecutionFailureError is the execution failure Transform returns when
// at least one transformer raised during execution and no alternative
// path was found within the retry budget. It is a type alias for
// search.ExecutionFailureError.
type ExecutionFailureError = search.ExecutionFailureError
