// Package idhash provides optional FNV-based helpers for hosts that want
// a quick, stable mapping from Go values to id.Kind without writing their
// own identifier registry. Identifier assignment is entirely the host's
// responsibility — transmute.New accepts any func(interface{}) id.Kind,
// and nothing in package search, edge, or tagset depends on this package.
package idhash

import (
	"hash/fnv"
	"reflect"

	"github.com/internetimagery/transmute/id"
)

// OfString hashes s into an id.Kind via FNV-1a. Equal strings always
// produce equal kinds; collisions across unrelated strings are possible
// but vanishingly unlikely for the small, curated vocabularies a
// transformer registry typically uses.
func OfString(s string) id.Kind {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return id.Kind(h.Sum64())
}

// OfAny derives an id.Kind from the runtime type name of v, suitable as a
// default kindOf function for transmute.New when the host has no richer
// notion of "kind" than "Go type". nil maps to a fixed sentinel kind
// distinct from any named type's hash.
func OfAny(v interface{}) id.Kind {
	if v == nil {
		return OfString("<nil>")
	}
	return OfString(reflect.TypeOf(v).String())
}
