package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	trelliserrors "github.com/trellis-ui/trellis/pkg/errors"
)

func writeThemeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesOverrides(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
base: dark
direction: rtl
palette:
  primary:
    base:
      light: "#ff0000"
      dark: "#aa0000"
slider:
  track_width: 48
  handle_rune: "◆"
`)

	th, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, DirectionRTL, th.Direction)
	require.Equal(t, "#ff0000", th.Palette.Primary.Base.Light)
	require.Equal(t, "#aa0000", th.Palette.Primary.Base.Dark)
	require.Equal(t, 48, th.Slider.TrackWidth)
	require.Equal(t, "◆", th.Slider.HandleRune)

	// Untouched sections keep base theme values.
	require.Equal(t, DarkTheme().Palette.Surface.Base.Light, th.Palette.Surface.Base.Light)
}

func TestLoadEmptyFileYieldsDefaultTheme(t *testing.T) {
	t.Parallel()

	th, err := Load(writeThemeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultTheme(), th)
}

func TestLoadRejectsBadColor(t *testing.T) {
	t.Parallel()

	_, err := Load(writeThemeFile(t, `
palette:
  primary:
    base:
      light: "not-a-color"
`))
	var valErr *trelliserrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Field, "Light")
}

func TestLoadRejectsBadDirection(t *testing.T) {
	t.Parallel()

	_, err := Load(writeThemeFile(t, "direction: sideways\n"))
	var parseErr *trelliserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *trelliserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadSpacingOverride(t *testing.T) {
	t.Parallel()

	th, err := Load(writeThemeFile(t, `
spacing:
  padding: [0, 1, 1, 2, 3, 4]
`))
	require.NoError(t, err)
	require.Equal(t, 1, th.Spacing.PaddingValue(SpacingSizeSmall))
	require.Equal(t, 2, th.Spacing.PaddingValue(SpacingSizeMedium))
	// Margin untouched.
	require.Equal(t, DefaultTheme().Spacing.MarginValue(SpacingSizeSmall), th.Spacing.MarginValue(SpacingSizeSmall))
}
