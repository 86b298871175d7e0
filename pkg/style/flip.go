package style

import (
	"sync/atomic"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/theme"
)

// FlippedMarker tags descriptors that already went through an RTL flip.
// It is read back on entry so a second flip of the same descriptor can
// be reported as a developer warning instead of silently producing a
// wrong layout.
const FlippedMarker = "__directionFlipped"

var warnLog atomic.Pointer[logger.Logger]

func init() {
	if base, err := logger.New(logger.Options{HumanReadable: true}); err == nil {
		warnLog.Store(base.WithComponent("style"))
	}
}

// SetLogger replaces the sink for developer warnings emitted by the
// pipeline. Pass logger.Nop() to silence them.
func SetLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	warnLog.Store(l)
}

func warn(msg string) {
	warnLog.Load().Warn(msg)
}

// mirroredKeys are the fixed bidirectional property pairs whose values
// relocate to the opposite key under RTL.
var mirroredKeys = map[string]string{
	"left":         "right",
	"right":        "left",
	"marginLeft":   "marginRight",
	"marginRight":  "marginLeft",
	"paddingLeft":  "paddingRight",
	"paddingRight": "paddingLeft",
	"borderLeft":   "borderRight",
	"borderRight":  "borderLeft",
}

// Flip mirrors direction-sensitive properties of the descriptor for the
// theme's text direction. A nil theme or a left-to-right theme returns
// a plain copy; callers must not rely on identity either way.
func Flip(th *theme.Theme, d Descriptor) Descriptor {
	if th == nil {
		return d.Clone()
	}
	return FlipDirection(th.Direction, d)
}

// FlipDirection is Flip with the direction supplied directly.
func FlipDirection(dir theme.Direction, d Descriptor) Descriptor {
	if !dir.IsRTL() {
		return d.Clone()
	}

	if _, already := d[FlippedMarker]; already {
		warn("descriptor flipped twice; layout will be mirrored back, call Prepare once per descriptor per render")
	}

	flipped := make(Descriptor, len(d)+1)
	for key, value := range d {
		if key == FlippedMarker {
			continue
		}

		switch key {
		case "float", "textAlign":
			flipped[key] = swapHorizontalKeyword(value)
		case "direction":
			flipped[key] = swapDirectionKeyword(value)
		case "transform":
			if s, ok := value.(string); ok {
				flipped[key] = flipTransform(s)
			} else {
				flipped[key] = value
			}
		case "transformOrigin":
			if s, ok := value.(string); ok {
				flipped[key] = flipTransformOrigin(s)
			} else {
				flipped[key] = value
			}
		default:
			if mirror, ok := mirroredKeys[key]; ok {
				flipped[mirror] = value
			} else {
				flipped[key] = value
			}
		}
	}

	flipped[FlippedMarker] = true
	return flipped
}

func swapHorizontalKeyword(value any) any {
	switch value {
	case "left":
		return "right"
	case "right":
		return "left"
	default:
		return value
	}
}

func swapDirectionKeyword(value any) any {
	switch value {
	case "ltr":
		return "rtl"
	case "rtl":
		return "ltr"
	default:
		return value
	}
}
