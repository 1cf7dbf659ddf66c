// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/flodiebold/conrod/f32"

// Common holds the fields shared by all widget descriptions.
type Common struct {
	// Size of the widget in pixels.
	Size f32.Point
	// Placement positions the widget. The zero Placement puts
	// the widget at the top left corner of its parent.
	Placement Placement
	// Parent defaults to the window.
	Parent ID
	// GraphicsFor marks the widget as purely graphical: input
	// aimed at it is delivered to GraphicsFor instead.
	GraphicsFor ID
}

// Placement positions a widget relative to the window or to another
// widget placed earlier in the frame.
type Placement struct {
	kind   placeKind
	of     ID
	pos    f32.Point
	offset f32.Point
}

type placeKind uint8

const (
	placeParent placeKind = iota
	placeAt
	placeMiddleOf
	placeTopLeftOf
)

// At places the top left corner of a widget at p in window
// coordinates.
func At(p f32.Point) Placement {
	return Placement{kind: placeAt, pos: p}
}

// MiddleOf centers a widget on another.
func MiddleOf(id ID) Placement {
	return Placement{kind: placeMiddleOf, of: id}
}

// TopLeftOf aligns the top left corners of a widget and another.
func TopLeftOf(id ID) Placement {
	return Placement{kind: placeTopLeftOf, of: id}
}

// Offset returns p moved by d.
func (p Placement) Offset(d f32.Point) Placement {
	p.offset = p.offset.Add(d)
	return p
}
