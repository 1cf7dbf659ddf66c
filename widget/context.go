// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/io/input"
	"github.com/flodiebold/conrod/io/pointer"
	"github.com/flodiebold/conrod/op"
	"github.com/flodiebold/conrod/text"
	"github.com/flodiebold/conrod/theme"
	"github.com/flodiebold/conrod/unit"
)

// Context carries the state needed by widgets during a frame. It is
// returned by UI.Begin and valid until the matching UI.End.
type Context struct {
	ui *UI
}

// NewID allocates a widget identity.
func (c *Context) NewID() ID {
	id := c.ui.graph.alloc()
	c.ui.log.WithField("id", id).Debug("widget: allocated id")
	return id
}

// Window returns the ID of the root widget covering the window.
func (c *Context) Window() ID {
	return c.ui.window
}

// Theme returns the theme for unset style fields.
func (c *Context) Theme() *theme.Theme {
	return c.ui.theme
}

// Metric returns the pixel density of the window.
func (c *Context) Metric() unit.Metric {
	return c.ui.metric
}

// Shaper returns the shaper for measuring text.
func (c *Context) Shaper() *text.Shaper {
	return c.ui.shaper
}

// Ops returns the operation list of the frame.
func (c *Context) Ops() *op.Ops {
	return &c.ui.ops
}

// Rect returns the rectangle of a widget placed in this frame.
func (c *Context) Rect(id ID) (f32.Rectangle, bool) {
	n, ok := c.ui.graph.placed(id, c.ui.frame)
	if !ok {
		return f32.Rectangle{}, false
	}
	return n.rect, true
}

// Kind returns the kind of a widget placed in this frame.
func (c *Context) Kind(id ID) (Kind, bool) {
	n, ok := c.ui.graph.placed(id, c.ui.frame)
	if !ok {
		return "", false
	}
	return n.kind, true
}

// Parent returns the parent of a widget placed in this frame.
func (c *Context) Parent(id ID) (ID, bool) {
	n, ok := c.ui.graph.placed(id, c.ui.frame)
	if !ok {
		return 0, false
	}
	return n.parent, true
}

// Clicks returns the clicks of any of the buttons on the widget id
// since the previous frame. Clicks on widgets that are graphics for
// id count as clicks on id.
func (c *Context) Clicks(id ID, buttons pointer.Buttons) []input.Click {
	return c.ui.router.Clicks(id, buttons)
}

// Pointer returns the pointer state over the widget id. It reports
// false if the pointer neither hovers nor presses it.
func (c *Context) Pointer(id ID) (input.PointerState, bool) {
	return c.ui.router.Pointer(id)
}
