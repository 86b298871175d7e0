package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()

	assert.Equal(t, DirectionLTR, th.Direction)
	assert.Equal(t, "#3b82f6", th.Palette.Primary.Base.Light)
	assert.Equal(t, "#111827", th.Palette.Surface.OnBase.Light)

	assert.Equal(t, lipgloss.RoundedBorder(), th.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), th.Borders.ForVariant(BorderVariantThick))

	assert.Equal(t, 3, th.Spacing.PaddingValue(SpacingSizeMedium))
	assert.Equal(t, 2, th.Spacing.MarginValue(SpacingSizeSmall))

	assert.True(t, th.Typography.Title.GetBold(), "title typography should be bold")
	assert.Equal(t, 30, th.Slider.TrackWidth)
	assert.Equal(t, "●", th.Slider.HandleRune)
}

func TestDarkThemeInvertsSurface(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
	assert.NotEqual(t, light.Typography.Base.GetForeground(), dark.Typography.Base.GetForeground())
}

func TestWithDirection(t *testing.T) {
	base := DefaultTheme()
	rtl := base.WithDirection(DirectionRTL)

	assert.Equal(t, DirectionRTL, rtl.Direction)
	assert.Equal(t, DirectionLTR, base.Direction, "WithDirection must not mutate the receiver")
	assert.True(t, rtl.Direction.IsRTL())
}

func TestNormalizeFillsZeroSections(t *testing.T) {
	var th Theme
	th = th.Normalize()

	assert.Equal(t, 2, th.Spacing.PaddingValue(SpacingSizeSmall))
	assert.Equal(t, 30, th.Slider.TrackWidth)
	assert.Equal(t, "─", th.Slider.TrackRune)
	assert.Equal(t, "━", th.Slider.FilledRune)
}

func TestSpacingLookupClampsOutOfRange(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, th.Spacing.PaddingValue(SpacingSizeSmall), th.Spacing.PaddingValue(SpacingSize(99)))
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"ltr", DirectionLTR, false},
		{"RTL", DirectionRTL, false},
		{"", DirectionLTR, false},
		{" rtl ", DirectionRTL, false},
		{"up", DirectionLTR, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
