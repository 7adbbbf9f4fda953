package transmute

import (
	"sync"

	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/search"
	"github.com/internetimagery/transmute/tagset"
)

// Detector infers tags for a raw value presented under the kind it is
// registered against. A detector returning an error aborts the Transform
// call that triggered it immediately — there is no sensible fallback tag
// set to substitute for one a detector failed to produce.
type Detector func(value interface{}) ([]id.Tag, error)

// Transformer is the function a registered transformer runs: it receives
// the running value and returns either the transformed value or an error.
type Transformer func(value interface{}) (interface{}, error)

// PlannerOption configures a Planner at construction time.
type PlannerOption func(*Planner)

// WithMaxAttempts overrides the retry budget Transform's driver uses when
// a transformer along a planned path fails. The default is 10.
func WithMaxAttempts(n int) PlannerOption {
	return func(p *Planner) { p.maxAttempts = n }
}

// Planner is the registry facade: it owns the edge store, holds strong
// references to registered transformer and detector callables keyed by
// their identifiers, and is the entry point for RegisterTransformer,
// RegisterDetector, and Transform.
type Planner struct {
	mu          sync.RWMutex
	store       *edge.Store
	transforms  map[id.Transformer]Transformer
	detectors   map[id.Kind][]Detector
	kindOf      func(value interface{}) id.Kind
	maxAttempts int
}

// New returns an empty Planner. kindOf maps a raw host value to the
// id.Kind it presents; the surrounding layer typically derives this from
// the value's runtime type.
func New(kindOf func(value interface{}) id.Kind, opts ...PlannerOption) *Planner {
	p := &Planner{
		store:      edge.NewStore(),
		transforms: make(map[id.Transformer]Transformer),
		detectors:  make(map[id.Kind][]Detector),
		kindOf:     kindOf,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RegisterTransformer records a transformer edge in the graph and keeps a
// strong reference to fn, keyed by transformerID. Re-registering an
// identical (cost, kindIn, requiredIn, kindOut, producedOut, transformerID)
// tuple is idempotent at the graph level (edge.Store.Add's contract); the
// callable reference is simply overwritten with fn.
func (p *Planner) RegisterTransformer(cost int64, kindIn id.Kind, requiredIn []id.Tag, kindOut id.Kind, producedOut []id.Tag, transformerID id.Transformer, fn Transformer) error {
	if fn == nil {
		return ErrNilTransformer
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.store.Add(cost, kindIn, tagset.New(requiredIn...), kindOut, tagset.New(producedOut...), transformerID)
	p.transforms[transformerID] = fn
	return nil
}

// RegisterDetector appends fn to the list of detectors run for values
// presenting kindIn when Transform is called without Explicit().
func (p *Planner) RegisterDetector(kindIn id.Kind, fn Detector) error {
	if fn == nil {
		return ErrNilDetector
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.detectors[kindIn] = append(p.detectors[kindIn], fn)
	return nil
}

// Transform plans and executes the cheapest chain of registered
// transformers carrying value from its resolved input kind to kindOut,
// satisfying any requested want tags along the way.
//
// By default the input kind is kindOf(value) and detectors registered
// under that kind run against value to seed the have-tags set. WithKindIn,
// WithHaveTags, WithWantTags, and Explicit override that default
// behavior; see options.go.
func (p *Planner) Transform(value interface{}, kindOut id.Kind, opts ...TransformOption) (interface{}, error) {
	cfg := transformConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	kindIn := p.kindOf(value)
	if cfg.kindIn != nil {
		kindIn = *cfg.kindIn
	}

	haveTags := append([]id.Tag(nil), cfg.haveTags...)
	if !cfg.explicit {
		detected, err := p.runDetectors(kindIn, value)
		if err != nil {
			return nil, err
		}
		haveTags = append(haveTags, detected...)
	}

	driver := &search.Driver{
		Store:       p.store,
		Resolve:     p.resolve,
		MaxAttempts: p.maxAttempts,
	}
	return driver.Execute(value, search.Query{
		KindIn:   kindIn,
		HaveTags: tagset.New(haveTags...),
		KindOut:  kindOut,
		WantTags: tagset.New(cfg.wantTags...),
	})
}

func (p *Planner) runDetectors(kindIn id.Kind, value interface{}) ([]id.Tag, error) {
	p.mu.RLock()
	detectors := append([]Detector(nil), p.detectors[kindIn]...)
	p.mu.RUnlock()

	var tags []id.Tag
	for _, d := range detectors {
		found, err := d(value)
		if err != nil {
			return nil, err
		}
		tags = append(tags, found...)
	}
	return tags, nil
}

func (p *Planner) resolve(transformerID id.Transformer) (search.Transformer, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	fn, ok := p.transforms[transformerID]
	if !ok {
		return nil, false
	}
	return search.Transformer(fn), true
}
