// SPDX-License-Identifier: Unlicense OR MIT

// Package theme holds the default styling values widgets fall back to
// when a style field is left unset.
package theme

import (
	"image/color"

	"github.com/flodiebold/conrod/unit"
)

// Theme is read-only during a frame. Widgets resolve every unset
// style field against it, so changing a Theme between frames
// restyles all widgets that did not override the field.
type Theme struct {
	Name       string
	Background color.NRGBA
	// ShapeColor is the fill color of pressable areas.
	ShapeColor  color.NRGBA
	BorderColor color.NRGBA
	BorderWidth unit.Dp
	LabelColor  color.NRGBA
	FontSize    struct {
		Large  unit.Sp
		Medium unit.Sp
		Small  unit.Sp
	}
}

// Default returns the built-in theme.
func Default() *Theme {
	t := &Theme{Name: "Default"}
	t.Background = rgb(0x000000)
	t.ShapeColor = rgb(0xffffff)
	t.BorderColor = rgb(0x000000)
	t.BorderWidth = 1
	t.LabelColor = rgb(0x000000)
	t.FontSize.Large = 26
	t.FontSize.Medium = 18
	t.FontSize.Small = 12
	return t
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
