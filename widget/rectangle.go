// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/op/paint"
	"github.com/flodiebold/conrod/unit"
)

// BorderedRectangle is a filled rectangle with a border. Unset
// style fields fall back to the theme's shape color, border width
// and border color.
type BorderedRectangle struct {
	Common
	Color       *color.NRGBA
	Border      *unit.Dp
	BorderColor *color.NRGBA
}

// NewBorderedRectangle returns a rectangle of the given size.
func NewBorderedRectangle(size f32.Point) BorderedRectangle {
	return BorderedRectangle{Common: Common{Size: size}}
}

// Set places the rectangle and adds its paint operation.
func (r BorderedRectangle) Set(id ID, gtx *Context) {
	Update(gtx, id, KindBorderedRectangle, r.Common, noState, func(a UpdateArgs[struct{}]) struct{} {
		th := a.Gtx.Theme()
		paint.RectOp{
			Rect:        a.Rect,
			Color:       or(r.Color, th.ShapeColor),
			Border:      a.Gtx.Metric().Dp(or(r.Border, th.BorderWidth)),
			BorderColor: or(r.BorderColor, th.BorderColor),
		}.Add(a.Gtx.Ops())
		return struct{}{}
	})
}

func noState() struct{} {
	return struct{}{}
}
