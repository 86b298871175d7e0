package style

// Prefixer expands a prepared descriptor into vendor-prefixed variants.
// The algorithm is enumeration over a static compatibility table, so the
// implementation is a replaceable collaborator rather than part of the
// pipeline core. Terminal renderers use NopPrefixer; web-targeting
// hosts plug in TablePrefixer or their own.
type Prefixer interface {
	Prefix(Descriptor) Descriptor
}

// NopPrefixer returns descriptors unchanged apart from a defensive copy.
type NopPrefixer struct{}

func (NopPrefixer) Prefix(d Descriptor) Descriptor {
	return d.Clone()
}

// TablePrefixer emits vendor-prefixed variants from a static table.
// Key rules copy the value under additional prefixed keys; value rules
// replace the value with an ordered fallback list, most specific first.
type TablePrefixer struct {
	Keys   map[string][]string
	Values map[string]map[string][]string
}

// DefaultPrefixTable returns the compatibility table covering the
// properties the component catalog emits.
func DefaultPrefixTable() TablePrefixer {
	return TablePrefixer{
		Keys: map[string][]string{
			"transform":       {"WebkitTransform", "msTransform"},
			"transformOrigin": {"WebkitTransformOrigin", "msTransformOrigin"},
			"transition":      {"WebkitTransition"},
			"userSelect":      {"WebkitUserSelect", "MozUserSelect", "msUserSelect"},
			"appearance":      {"WebkitAppearance", "MozAppearance"},
			"boxSizing":       {"WebkitBoxSizing", "MozBoxSizing"},
			"flexDirection":   {"WebkitFlexDirection", "msFlexDirection"},
			"flexWrap":        {"WebkitFlexWrap", "msFlexWrap"},
			"alignItems":      {"WebkitAlignItems", "msFlexAlign"},
			"justifyContent":  {"WebkitJustifyContent", "msFlexPack"},
		},
		Values: map[string]map[string][]string{
			"display": {
				"flex":        {"-webkit-box", "-ms-flexbox", "-webkit-flex", "flex"},
				"inline-flex": {"-webkit-inline-box", "-ms-inline-flexbox", "-webkit-inline-flex", "inline-flex"},
			},
			"cursor": {
				"grab":     {"-webkit-grab", "grab"},
				"grabbing": {"-webkit-grabbing", "grabbing"},
				"zoom-in":  {"-webkit-zoom-in", "zoom-in"},
				"zoom-out": {"-webkit-zoom-out", "zoom-out"},
			},
		},
	}
}

// Prefix applies the table. The input is never mutated.
func (p TablePrefixer) Prefix(d Descriptor) Descriptor {
	out := make(Descriptor, len(d))
	for key, value := range d {
		out[key] = value

		if prefixes, ok := p.Keys[key]; ok {
			for _, prefixed := range prefixes {
				if _, taken := d[prefixed]; !taken {
					out[prefixed] = value
				}
			}
		}

		if valueTable, ok := p.Values[key]; ok {
			if s, isString := value.(string); isString {
				if fallbacks, hit := valueTable[s]; hit {
					out[key] = append([]string(nil), fallbacks...)
				}
			}
		}
	}
	return out
}
