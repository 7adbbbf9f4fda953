package transmute

import "github.com/internetimagery/transmute/id"

// transformConfig accumulates Transform's optional parameters. A zero
// value means "use the default": resolve kindIn from kindOf, run
// detectors, and want no particular tags.
type transformConfig struct {
	kindIn   *id.Kind
	haveTags []id.Tag
	wantTags []id.Tag
	explicit bool
}

// TransformOption customizes a single Transform call.
type TransformOption func(*transformConfig)

// WithKindIn overrides the kind Transform resolves from kindOf(value).
func WithKindIn(k id.Kind) TransformOption {
	return func(cfg *transformConfig) {
		kind := k
		cfg.kindIn = &kind
	}
}

// WithHaveTags seeds the have-tags set in addition to whatever detectors
// produce (or in place of them, if combined with Explicit).
func WithHaveTags(tags ...id.Tag) TransformOption {
	return func(cfg *transformConfig) { cfg.haveTags = append(cfg.haveTags, tags...) }
}

// WithWantTags requires the final value to carry the given tags, steering
// the search toward edges that produce them even at higher cost.
func WithWantTags(tags ...id.Tag) TransformOption {
	return func(cfg *transformConfig) { cfg.wantTags = append(cfg.wantTags, tags...) }
}

// Explicit skips detector dispatch: the have-tags set is exactly
// WithHaveTags's contribution, nothing more.
func Explicit() TransformOption {
	return func(cfg *transformConfig) { cfg.explicit = true }
}
