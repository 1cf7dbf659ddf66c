// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"image/color"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/op"
)

// RectOp draws a filled rectangle with a border drawn inside
// its bounds.
type RectOp struct {
	Rect  f32.Rectangle
	Color color.NRGBA
	// Border is the border width in pixels. A zero Border
	// draws no border.
	Border      float32
	BorderColor color.NRGBA
}

// TextOp draws Text with its bounding box centered in Rect.
type TextOp struct {
	Rect  f32.Rectangle
	Text  string
	Color color.NRGBA
	// Size is the font size in pixels.
	Size float32
}

// Add the operation to ops.
func (r RectOp) Add(o *op.Ops) {
	o.Write(r)
}

// Inner returns the area inside the border.
func (r RectOp) Inner() f32.Rectangle {
	return r.Rect.Inset(r.Border)
}

func (r RectOp) String() string {
	return fmt.Sprintf("rect %v color %s border %g %s",
		r.Rect, hex(r.Color), r.Border, hex(r.BorderColor))
}

// Add the operation to ops.
func (t TextOp) Add(o *op.Ops) {
	o.Write(t)
}

func (t TextOp) String() string {
	return fmt.Sprintf("text %q %v color %s size %g", t.Text, t.Rect, hex(t.Color), t.Size)
}

func (RectOp) ImplementsOp() {}
func (TextOp) ImplementsOp() {}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
