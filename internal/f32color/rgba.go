// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements colour adjustments for interaction
// feedback: luminance changes, hover and press variants.
package f32color

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// RGBA is a 32 bit floating point representation of a non-premultiplied
// sRGB colour. Channels are in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// darkLuminance is the luminance Darken moves colours to.
const darkLuminance = 0.1

// FromNRGBA converts c to floating point.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}
}

// NRGBA converts c to 8 bit channels, clamping out of range values.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Luminance returns the HSL lightness of c.
func (c RGBA) Luminance() float32 {
	return (max(c.R, c.G, c.B) + min(c.R, c.G, c.B)) * .5
}

// Luminance returns the HSL lightness of c in [0, 1].
func Luminance(c color.NRGBA) float32 {
	return FromNRGBA(c).Luminance()
}

// WithLuminance returns c with its HSL lightness replaced by l.
// Hue, saturation and alpha are kept.
func WithLuminance(c color.NRGBA, l float32) color.NRGBA {
	f := FromNRGBA(c)
	h, s, _ := hsl(f)
	r, g, b := rgb(h, s, clamp(l))
	return RGBA{R: r, G: g, B: b, A: f.A}.NRGBA()
}

// Darken returns a dark variant of c. Colours lighter than the
// dark luminance are moved to it; darker colours have their
// luminance halved.
func Darken(c color.NRGBA) color.NRGBA {
	l := Luminance(c)
	if l > darkLuminance {
		return WithLuminance(c, darkLuminance)
	}
	return WithLuminance(c, l*.5)
}

// Highlighted returns the variant of c for a hovered widget.
func Highlighted(c color.NRGBA) color.NRGBA {
	f := FromNRGBA(c)
	switch l := f.Luminance(); {
	case l > .8:
		f.R, f.G, f.B = f.R-.2, f.G-.2, f.B-.2
	case l < .2:
		f.R, f.G, f.B = f.R+.2, f.G+.2, f.B+.2
	default:
		f.R = (1-f.R)*.5*f.R + f.R
		f.G = (1-f.G)*.1*f.G + f.G
		f.B = (1-f.B)*.1*f.B + f.B
	}
	f.A = (1-f.A)*.5 + f.A
	return clampAll(f).NRGBA()
}

// Clicked returns the variant of c for a pressed widget.
func Clicked(c color.NRGBA) color.NRGBA {
	f := FromNRGBA(c)
	switch l := f.Luminance(); {
	case l > .8:
		f.G, f.B = f.G-.2, f.B-.2
	case l < .2:
		f.R, f.G, f.B = f.R+.4, f.G+.2, f.B+.2
	default:
		f.R = (1-f.R)*.75 + f.R
		f.G = (1-f.G)*.25 + f.G
		f.B = (1-f.B)*.25 + f.B
	}
	f.A = (1-f.A)*.75 + f.A
	return clampAll(f).NRGBA()
}

// hsl converts c to hue, saturation and lightness, all in [0, 1].
func hsl(c RGBA) (h, s, l float32) {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	l = (hi + lo) * .5
	if hi == lo {
		return 0, 0, l
	}
	d := hi - lo
	if l > .5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h / 6, s, l
}

func rgb(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		return l, l, l
	}
	var q float32
	if l < .5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hue(p, q, h+1./3), hue(p, q, h), hue(p, q, h-1./3)
}

func hue(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1./6:
		return p + (q-p)*6*t
	case t < .5:
		return q
	case t < 2./3:
		return p + (q-p)*(2./3-t)*6
	}
	return p
}

func clampAll(c RGBA) RGBA {
	return RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

func clamp[T constraints.Float](v T) T {
	return min(max(v, 0), 1)
}

func to8(v float32) uint8 {
	return uint8(clamp(v)*0xff + .5)
}
