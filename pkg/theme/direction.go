package theme

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Direction is the text direction a theme lays components out in.
// Right-to-left themes mirror every direction-sensitive style property
// through the style pipeline before rendering.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the direction is right-to-left.
func (d Direction) IsRTL() bool {
	return d == DirectionRTL
}

// ParseDirection converts a textual direction into a Direction value.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	default:
		return DirectionLTR, fmt.Errorf("unknown direction %q", s)
	}
}

// UnmarshalYAML decodes "ltr"/"rtl" from theme files.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDirection(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the direction as its textual form.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}
