// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flodiebold/conrod/unit"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverrides(t *testing.T) {
	th, err := Decode(strings.NewReader(`
name: Slate
shape_color: steelblue
label_color: "#fff"
border_color: "#10203080"
border_width: 2.5
font_size:
  medium: 16
`))
	require.NoError(t, err)
	def := Default()
	require.Equal(t, "Slate", th.Name)
	require.Equal(t, color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, th.ShapeColor)
	require.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, th.LabelColor)
	require.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, th.BorderColor)
	require.Equal(t, unit.Dp(2.5), th.BorderWidth)
	require.Equal(t, unit.Sp(16), th.FontSize.Medium)
	// Untouched keys keep their defaults.
	require.Equal(t, def.Background, th.Background)
	require.Equal(t, def.FontSize.Large, th.FontSize.Large)
	require.Equal(t, def.FontSize.Small, th.FontSize.Small)
}

func TestDecodeEmpty(t *testing.T) {
	th, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), th)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		label string
		src   string
		msg   string
	}{
		{"bad color", "name: x\nshape_color: notacolor\n", "line 2"},
		{"bad hex", "label_color: \"#12345\"\n", "invalid color"},
		{"unknown key", "shape_colour: red\n", "shape_colour"},
		{"negative border", "border_width: -1\n", "border_width"},
		{"zero font", "font_size:\n  small: 0\n", "font_size.small"},
	} {
		t.Run(tc.label, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shape_color: red\n"), 0o644))
	th, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, th.ShapeColor)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("  LightGray ")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}, c)
	c, err = ParseColor("#0a0")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{G: 0xaa, A: 0xff}, c)
	_, err = ParseColor("#zzzzzz")
	require.Error(t, err)
}
