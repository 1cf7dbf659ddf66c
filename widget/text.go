// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/op/paint"
	"github.com/flodiebold/conrod/unit"
)

// Text is a single line label.
type Text struct {
	// Common.Size is measured from the text when left zero.
	Common
	Text string
	// Color defaults to the theme's label color.
	Color *color.NRGBA
	// FontSize defaults to the theme's medium font size.
	FontSize *unit.Sp
}

// NewText returns a label for txt.
func NewText(txt string) Text {
	return Text{Text: txt}
}

// Set places the label and adds its paint operation.
func (t Text) Set(id ID, gtx *Context) {
	th := gtx.Theme()
	px := gtx.Metric().Sp(or(t.FontSize, th.FontSize.Medium))
	c := t.Common
	if c.Size == (f32.Point{}) {
		c.Size = gtx.Shaper().Measure(t.Text, px).Size()
	}
	Update(gtx, id, KindText, c, noState, func(a UpdateArgs[struct{}]) struct{} {
		paint.TextOp{
			Rect:  a.Rect,
			Text:  t.Text,
			Color: or(t.Color, th.LabelColor),
			Size:  px,
		}.Add(a.Gtx.Ops())
		return struct{}{}
	})
}
