// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/internal/f32color"
	"github.com/flodiebold/conrod/io/pointer"
	"github.com/flodiebold/conrod/theme"
	"github.com/flodiebold/conrod/unit"
)

// Toggle is a pressable area for toggling a bool.
//
// Like a button it reacts to completed clicks of the primary button.
// Toggle never changes Value itself: Set reports the sequence of new
// values, and the caller decides whether to store them.
type Toggle struct {
	Common
	Value bool
	// Enabled toggles react to clicks. Clicks on disabled toggles
	// are dropped.
	Enabled bool
	// Label is drawn centered on the toggle. The empty label
	// draws nothing.
	Label string
	Style ToggleStyle
}

// ToggleStyle overrides the theme for a Toggle. Nil fields inherit.
type ToggleStyle struct {
	// Color of the pressable area.
	Color *color.NRGBA
	// Border is the width of the border around the area.
	Border      *unit.Dp
	BorderColor *color.NRGBA
	LabelColor  *color.NRGBA
	// LabelFontSize defaults to the theme's medium font size.
	LabelFontSize *unit.Sp
}

// ResolvedToggleStyle is a ToggleStyle with every field filled in.
type ResolvedToggleStyle struct {
	Color         color.NRGBA
	Border        unit.Dp
	BorderColor   color.NRGBA
	LabelColor    color.NRGBA
	LabelFontSize unit.Sp
}

// ToggleState is the persistent state of a Toggle.
type ToggleState struct {
	rectangle IndexSlot
	label     IndexSlot
}

// NewToggle returns an enabled Toggle for value.
func NewToggle(value bool) Toggle {
	return Toggle{Value: value, Enabled: true}
}

func (t Toggle) WithEnabled(enabled bool) Toggle {
	t.Enabled = enabled
	return t
}

func (t Toggle) WithLabel(label string) Toggle {
	t.Label = label
	return t
}

func (t Toggle) WithSize(size f32.Point) Toggle {
	t.Size = size
	return t
}

func (t Toggle) WithPlacement(p Placement) Toggle {
	t.Placement = p
	return t
}

func (t Toggle) WithColor(c color.NRGBA) Toggle {
	t.Style.Color = &c
	return t
}

func (t Toggle) WithBorder(width unit.Dp) Toggle {
	t.Style.Border = &width
	return t
}

func (t Toggle) WithBorderColor(c color.NRGBA) Toggle {
	t.Style.BorderColor = &c
	return t
}

func (t Toggle) WithLabelColor(c color.NRGBA) Toggle {
	t.Style.LabelColor = &c
	return t
}

func (t Toggle) WithLabelFontSize(size unit.Sp) Toggle {
	t.Style.LabelFontSize = &size
	return t
}

// Resolve fills the unset fields of s from th.
func (s ToggleStyle) Resolve(th *theme.Theme) ResolvedToggleStyle {
	return ResolvedToggleStyle{
		Color:         or(s.Color, th.ShapeColor),
		Border:        or(s.Border, th.BorderWidth),
		BorderColor:   or(s.BorderColor, th.BorderColor),
		LabelColor:    or(s.LabelColor, th.LabelColor),
		LabelFontSize: or(s.LabelFontSize, th.FontSize.Medium),
	}
}

// Set places the toggle and reports the values it took since the
// previous frame, one per click.
func (t Toggle) Set(id ID, gtx *Context) TimesClicked {
	return Update(gtx, id, KindToggle, t.Common, func() ToggleState { return ToggleState{} }, t.update)
}

func (t Toggle) update(a UpdateArgs[ToggleState]) TimesClicked {
	gtx := a.Gtx
	clicks := 0
	if t.Enabled {
		clicks = len(gtx.Clicks(a.ID, pointer.ButtonPrimary))
	}
	changes := NewTimesClicked(t.Value, clicks)

	style := t.Style.Resolve(gtx.Theme())
	col := style.Color
	value, ok := changes.Last()
	if !ok {
		value = t.Value
	}
	if !value {
		col = f32color.Darken(col)
	}
	if p, ok := gtx.Pointer(a.ID); ok {
		switch {
		case p.Pressed:
			col = f32color.Clicked(col)
		case p.Hovered:
			col = f32color.Highlighted(col)
		}
	}

	rect := a.State.rectangle.Get(gtx)
	BorderedRectangle{
		Common: Common{
			Size:        a.Rect.Size(),
			Placement:   MiddleOf(a.ID),
			Parent:      a.ID,
			GraphicsFor: a.ID,
		},
		Color:       &col,
		Border:      &style.Border,
		BorderColor: &style.BorderColor,
	}.Set(rect, gtx)

	if t.Label != "" {
		label := a.State.label.Get(gtx)
		Text{
			Common: Common{
				Placement:   MiddleOf(rect),
				Parent:      a.ID,
				GraphicsFor: a.ID,
			},
			Text:     t.Label,
			Color:    &style.LabelColor,
			FontSize: &style.LabelFontSize,
		}.Set(label, gtx)
	}

	return changes
}

// Rectangle returns the ID of the toggle's rectangle, once allocated.
func (s *ToggleState) Rectangle() (ID, bool) {
	return s.rectangle.ID()
}

// Label returns the ID of the toggle's label, once allocated.
func (s *ToggleState) Label() (ID, bool) {
	return s.label.ID()
}
