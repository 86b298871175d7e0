package style

// Descriptor maps visual property names to values. Values are numbers,
// strings, bools, or nested Descriptors for pseudo-states such as
// "focus" or "hover". Descriptors are produced fresh per render and
// treated as immutable: every pipeline stage returns a new map.
type Descriptor map[string]any

// Merge combines an ordered sequence of descriptors into one new
// descriptor. Later descriptors take precedence key-by-key. Merging
// nothing yields an empty descriptor. Inputs are never mutated.
func Merge(descs ...Descriptor) Descriptor {
	merged := make(Descriptor)
	for _, d := range descs {
		for key, value := range d {
			merged[key] = value
		}
	}
	return merged
}

// Clone returns a shallow copy of the descriptor. Nested descriptors
// are shared; the pipeline never mutates values in place, so sharing is
// safe.
func (d Descriptor) Clone() Descriptor {
	clone := make(Descriptor, len(d))
	for key, value := range d {
		clone[key] = value
	}
	return clone
}

// Nested returns the nested descriptor stored under key, or nil when
// the key is absent or holds a non-descriptor value. Components use
// this to pull pseudo-state blocks ("focus", "hover") out of a merged
// descriptor before handing the remainder to Prepare.
func (d Descriptor) Nested(key string) Descriptor {
	switch v := d[key].(type) {
	case Descriptor:
		return v
	case map[string]any:
		return Descriptor(v)
	default:
		return nil
	}
}

// WithoutNested returns a copy of the descriptor with every
// nested-descriptor value removed.
func (d Descriptor) WithoutNested() Descriptor {
	flat := make(Descriptor, len(d))
	for key, value := range d {
		switch value.(type) {
		case Descriptor, map[string]any:
			continue
		default:
			flat[key] = value
		}
	}
	return flat
}
