// Package transmute implements a type-directed transformation planner: a
// registry of small one-argument transformer functions, each annotated
// with an input kind, an output kind, tag dependencies and descriptors,
// and a cost, plus a planner that finds and executes the cheapest chain
// of transformers carrying a value from a presented kind to a desired
// kind while satisfying tag dependencies along the way.
//
//	planner := transmute.New(kindOfFn)
//	planner.RegisterTransformer(1, kindRaw, nil, kindParsed, nil, idParse, parseFn)
//	out, err := planner.Transform(raw, kindFinal)
//
// The search engine itself — the bidirectional cost-ordered search with
// tag-dependency constraints, the heuristic frontier bias, and the
// skip-and-retry execution loop — lives in the subpackages: id
// (opaque identifiers), tagset (canonicalised tag collections), edge (the
// transformer graph's storage), and search (frontier state, the
// searcher, and the retry-loop driver). This package is the thin
// registration and dispatch facade around them.
//
// An early prototype of this idea, written as a Rust extension bound into
// Python, called the registry a Grimoire, registration
// inscribe_transmutation, and the query transmute — hence the module
// name. The facade here keeps that flavor only in naming, not in API
// shape: Planner.RegisterTransformer and Planner.Transform are plain Go.
package transmute
