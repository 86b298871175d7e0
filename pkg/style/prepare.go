package style

import (
	"github.com/trellis-ui/trellis/pkg/theme"
)

// Pipeline composes the three preparation stages with a configurable
// Prefixer collaborator.
type Pipeline struct {
	Prefixer Prefixer
}

// Default is the pipeline components use when rendering to a terminal:
// merge and flip run in full, vendor prefixing is a no-op.
var Default = Pipeline{Prefixer: NopPrefixer{}}

// Prepare merges the descriptors, flips the result for the theme's text
// direction, and expands vendor prefixes:
//
//	prepare(theme, descs...) = prefix(flip(theme, merge(descs...)))
//
// Call it exactly once per descriptor per render; preparing an
// already-prepared descriptor trips the double-flip warning.
func (p Pipeline) Prepare(th *theme.Theme, descs ...Descriptor) Descriptor {
	prefixer := p.Prefixer
	if prefixer == nil {
		prefixer = NopPrefixer{}
	}
	return prefixer.Prefix(Flip(th, Merge(descs...)))
}

// Prepare runs the default pipeline.
func Prepare(th *theme.Theme, descs ...Descriptor) Descriptor {
	return Default.Prepare(th, descs...)
}
