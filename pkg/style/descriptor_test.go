package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLaterWins(t *testing.T) {
	a := Descriptor{"paddingLeft": 2, "foreground": "#ffffff"}
	b := Descriptor{"paddingLeft": 4, "bold": true}

	merged := Merge(a, b)

	assert.Equal(t, 4, merged["paddingLeft"], "overlapping keys agree with the later descriptor")
	assert.Equal(t, "#ffffff", merged["foreground"], "non-overlapping keys agree with the earlier descriptor")
	assert.Equal(t, true, merged["bold"])
}

func TestMergeEmptyInput(t *testing.T) {
	require.Empty(t, Merge())
	require.Empty(t, Merge(Descriptor{}, nil))
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := Descriptor{"marginLeft": 1}
	b := Descriptor{"marginLeft": 2}

	merged := Merge(a, b)
	merged["marginLeft"] = 99

	assert.Equal(t, 1, a["marginLeft"])
	assert.Equal(t, 2, b["marginLeft"])
}

func TestMergeReturnsFreshDescriptor(t *testing.T) {
	a := Descriptor{"width": 10}
	first := Merge(a)
	second := Merge(a)

	first["width"] = 20
	assert.Equal(t, 10, second["width"], "a descriptor must be reusable as a base for multiple merges")
}

func TestNestedExtraction(t *testing.T) {
	d := Descriptor{
		"foreground": "#fff",
		"focus":      Descriptor{"bold": true},
		"hover":      map[string]any{"faint": true},
	}

	require.Equal(t, Descriptor{"bold": true}, d.Nested("focus"))
	require.Equal(t, Descriptor{"faint": true}, d.Nested("hover"))
	require.Nil(t, d.Nested("foreground"))
	require.Nil(t, d.Nested("absent"))

	flat := d.WithoutNested()
	require.Equal(t, Descriptor{"foreground": "#fff"}, flat)
}
