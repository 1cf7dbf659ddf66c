// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures single lines of text.

Shaping and rendering of glyphs belong to the rendering backend; widgets
only need the extent of a label to size and center it.
*/
package text

import (
	"fmt"

	"github.com/flodiebold/conrod/f32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text set in a single font. It caches a face for
// every recently used size.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	font  *opentype.Font
	faces faceCache
}

// A Line contains the measurements of a line of text.
type Line struct {
	// Width is the advance width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline.
	Descent fixed.Int26_6
}

// NewShaper returns a Shaper for the Go regular font.
func NewShaper() *Shaper {
	s, err := NewShaperTTF(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return s
}

// NewShaperTTF returns a Shaper for an OpenType or TrueType font.
func NewShaperTTF(ttf []byte) (*Shaper, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Shaper{font: f}, nil
}

// Measure the extent of str at size pixels per em.
func (s *Shaper) Measure(str string, size float32) Line {
	if size <= 0 {
		return Line{}
	}
	face, err := s.face(fixed.Int26_6(size * 64))
	if err != nil {
		// The font parsed, so a face for a positive size always
		// exists.
		panic(err)
	}
	m := face.Metrics()
	return Line{
		Width:   font.MeasureString(face, str),
		Ascent:  m.Ascent,
		Descent: m.Descent,
	}
}

// Size returns the pixel dimensions of l, rounded up.
func (l Line) Size() f32.Point {
	return f32.Pt(float32(l.Width.Ceil()), float32((l.Ascent + l.Descent).Ceil()))
}

func (s *Shaper) face(ppem fixed.Int26_6) (font.Face, error) {
	if f, ok := s.faces.Get(ppem); ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size: float64(ppem) / 64,
		// At 72 DPI a point is a pixel.
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces.Put(ppem, f)
	return f, nil
}
