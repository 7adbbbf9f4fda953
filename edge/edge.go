// Package edge defines the transformer descriptor (Edge) and the
// append-only directed multigraph that indexes edges by source and target
// kind (Store).
package edge

import (
	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

// Key uniquely identifies an Edge by the tuple of all six registration
// fields. Two registrations with identical fields collapse to the same
// Key, which is what lets Store.Add be idempotent and lets the searcher
// use a plain map for its visited index and skip set instead of pointer
// identity.
type Key struct {
	Cost            int64
	KindIn          id.Kind
	KindOut         id.Kind
	TransformerID   id.Transformer
	RequiredInHash  tagset.Hash
	ProducedOutHash tagset.Hash
}

// Edge is an immutable transformer descriptor: a registered function
// carrying a value from KindIn to KindOut, at the given Cost, consuming
// RequiredInTags and producing ProducedOutTags.
type Edge struct {
	Cost            int64
	KindIn          id.Kind
	KindOut         id.Kind
	TransformerID   id.Transformer
	RequiredInTags  tagset.Set
	ProducedOutTags tagset.Set
}

// Key returns the edge's identity tuple.
func (e Edge) Key() Key {
	return Key{
		Cost:            e.Cost,
		KindIn:          e.KindIn,
		KindOut:         e.KindOut,
		TransformerID:   e.TransformerID,
		RequiredInHash:  e.RequiredInTags.Hash(),
		ProducedOutHash: e.ProducedOutTags.Hash(),
	}
}
