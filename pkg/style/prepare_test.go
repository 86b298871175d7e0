package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareComposesStages(t *testing.T) {
	pipeline := Pipeline{Prefixer: DefaultPrefixTable()}

	out := pipeline.Prepare(rtlTheme(),
		Descriptor{"paddingLeft": 2, "transform": "translateX(10px)"},
		Descriptor{"paddingLeft": 4},
	)

	// Merge: later descriptor wins, then flip relocates the key.
	assert.Equal(t, 4, out["paddingRight"])
	assert.NotContains(t, out, "paddingLeft")

	// Flip then prefix of the transform value.
	assert.Equal(t, "translateX(-10px)", out["transform"])
	assert.Equal(t, "translateX(-10px)", out["WebkitTransform"])
}

func TestPrepareLTRLeavesContentAlone(t *testing.T) {
	out := Prepare(ltrTheme(), Descriptor{"paddingLeft": 2}, Descriptor{"bold": true})

	assert.Equal(t, Descriptor{"paddingLeft": 2, "bold": true}, out)
}

func TestPrepareTwiceTripsDoubleFlipWarning(t *testing.T) {
	buf := captureWarnings(t)

	prepared := Prepare(rtlTheme(), Descriptor{"left": 1})
	require.Empty(t, buf.String())

	Prepare(rtlTheme(), prepared)
	assert.Contains(t, buf.String(), "flipped twice")
}

func TestPrepareNilPrefixerFallsBack(t *testing.T) {
	var pipeline Pipeline

	out := pipeline.Prepare(ltrTheme(), Descriptor{"width": 10})
	assert.Equal(t, Descriptor{"width": 10}, out)
}

func TestPrepareEmptyInput(t *testing.T) {
	assert.Empty(t, Prepare(ltrTheme()))
}
