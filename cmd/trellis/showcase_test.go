package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/components"
	"github.com/trellis-ui/trellis/pkg/theme"
)

func TestShowcaseCommandRendersCatalog(t *testing.T) {
	root := newRootCmd(logger.Nop())
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"showcase"})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "trellis component catalog")
	assert.Contains(t, out, "Save")
	assert.Contains(t, out, "passing")
	assert.Contains(t, out, "Favourites")
}

func TestShowcaseMirrorsUnderRTL(t *testing.T) {
	th := theme.DefaultTheme().WithDirection(theme.DirectionRTL)
	ctx := components.NewContext(&th).WithWidth(60)

	out := renderShowcase(ctx)
	assert.Contains(t, out, "◂", "RTL catalog uses the mirrored menu pointer")
	assert.Contains(t, out, "rtl")
}

func TestResolveThemeFlagCombinations(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		th, err := resolveTheme(&rootFlags{})
		require.NoError(t, err)
		assert.Equal(t, theme.DirectionLTR, th.Direction)
	})

	t.Run("dark rtl", func(t *testing.T) {
		th, err := resolveTheme(&rootFlags{dark: true, rtl: true})
		require.NoError(t, err)
		assert.Equal(t, theme.DirectionRTL, th.Direction)
	})

	t.Run("theme file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base: dark\ndirection: rtl\n"), 0o644))

		th, err := resolveTheme(&rootFlags{themePath: path})
		require.NoError(t, err)
		assert.Equal(t, theme.DirectionRTL, th.Direction)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := resolveTheme(&rootFlags{themePath: "/does/not/exist.yaml"})
		require.Error(t, err)
	})
}
