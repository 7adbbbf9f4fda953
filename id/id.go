// Package id defines the opaque identifier types the search engine
// operates on: kinds, tags, and transformers. All three are thin wrappers
// around int64 so a kind can never be passed where a tag is expected, even
// though the engine itself never interprets an identifier beyond equality
// and hashing (uniqueness within a namespace is the host's responsibility).
package id

// Kind labels one of the vertex-types in the transformer graph — the
// "type" a value presents to the planner.
type Kind int64

// Tag is a consumable dependency (when required) or a descriptor (when
// produced) attached to a transformer's input or output.
type Tag int64

// Transformer identifies a registered one-argument transformer function.
// The search engine never calls the function itself; it only carries this
// identifier along a planned path for the driver to resolve.
type Transformer int64
