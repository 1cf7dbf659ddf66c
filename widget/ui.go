// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/io/event"
	"github.com/flodiebold/conrod/io/input"
	"github.com/flodiebold/conrod/op"
	"github.com/flodiebold/conrod/text"
	"github.com/flodiebold/conrod/theme"
	"github.com/flodiebold/conrod/unit"
)

// UI owns the widget graph and the input state of a window across
// frames. A UI is driven by a single goroutine: Queue events, then
// Begin a frame, Set the widgets and End the frame.
type UI struct {
	theme  *theme.Theme
	metric unit.Metric
	shaper *text.Shaper
	log    logrus.FieldLogger

	router input.Router
	graph  graph
	ops    op.Ops

	frame   uint64
	window  ID
	inFrame bool
	gtx     Context
}

// Option configures a UI.
type Option func(u *UI)

// WithLogger sets the logger for graph diagnostics. The default
// logger discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(u *UI) {
		u.log = l
	}
}

// WithMetric sets the pixel density used to convert dp and sp.
func WithMetric(m unit.Metric) Option {
	return func(u *UI) {
		u.metric = m
	}
}

// WithShaper sets the shaper used to measure labels.
func WithShaper(s *text.Shaper) Option {
	return func(u *UI) {
		u.shaper = s
	}
}

// NewUI returns a UI styled by th, or theme.Default if th is nil.
func NewUI(th *theme.Theme, options ...Option) *UI {
	if th == nil {
		th = theme.Default()
	}
	u := &UI{theme: th}
	for _, o := range options {
		o(u)
	}
	if u.log == nil {
		l := logrus.New()
		l.Out = io.Discard
		u.log = l
	}
	if u.shaper == nil {
		u.shaper = text.NewShaper()
	}
	u.gtx.ui = u
	return u
}

// SetTheme replaces the theme from the next frame on. It panics if
// called during a frame.
func (u *UI) SetTheme(th *theme.Theme) {
	if u.inFrame {
		panic("widget: SetTheme during a frame")
	}
	u.theme = th
}

// Queue input events to be delivered in the next frame.
func (u *UI) Queue(events ...event.Event) {
	u.router.Queue(events...)
}

// Begin a frame for a window of the given size. Queued events are
// routed against the widgets laid out in the previous frame.
func (u *UI) Begin(size f32.Point) *Context {
	if u.inFrame {
		panic("widget: Begin without End")
	}
	u.inFrame = true
	u.frame++
	u.ops.Reset()
	u.graph.beginFrame()
	u.router.Frame()
	if u.window == 0 {
		u.window = u.graph.alloc()
	}
	u.place(u.window, KindWindow, Common{Placement: At(f32.Point{}), Size: size})
	return &u.gtx
}

// End the frame and return its operations. The operations are valid
// until the next call to Begin. Widgets not placed during the frame
// lose their state.
func (u *UI) End() *op.Ops {
	if !u.inFrame {
		panic("widget: End without Begin")
	}
	u.inFrame = false
	u.router.SetAreas(u.graph.areas())
	for _, id := range u.graph.collect(u.frame) {
		u.log.WithFields(logrus.Fields{"id": id, "frame": u.frame}).Debug("widget: removed unplaced widget")
	}
	return &u.ops
}

// Frame returns the number of the current or most recent frame.
func (u *UI) Frame() uint64 {
	return u.frame
}

// place records the widget id for this frame and returns its node.
func (u *UI) place(id ID, kind Kind, c Common) *node {
	if !u.inFrame {
		panic("widget: widget set outside a frame")
	}
	parent := c.Parent
	if parent == 0 && id != u.window {
		parent = u.window
	}
	rect := u.resolve(parent, c)
	n := u.graph.node(id)
	if n == nil {
		panic("widget: invalid ID " + id.String())
	}
	if n.frame == u.frame {
		u.log.WithFields(logrus.Fields{"id": id, "kind": kind}).Warn("widget: placed twice in one frame")
	}
	if n.kind != kind {
		if n.kind != "" {
			u.log.WithFields(logrus.Fields{"id": id, "from": n.kind, "to": kind}).Debug("widget: kind changed, resetting state")
		}
		n.state = nil
	}
	n.kind = kind
	n.parent = parent
	n.graphicsFor = c.GraphicsFor
	n.rect = rect
	n.frame = u.frame
	u.graph.order = append(u.graph.order, id)
	return n
}

func (u *UI) resolve(parent ID, c Common) f32.Rectangle {
	p := c.Placement
	var origin f32.Point
	switch p.kind {
	case placeAt:
		origin = p.pos
	case placeMiddleOf:
		origin = f32.Centered(u.rectOf(p.of).Center(), c.Size).Min
	case placeTopLeftOf:
		origin = u.rectOf(p.of).Min
	default:
		origin = u.rectOf(parent).Min
	}
	origin = origin.Add(p.offset)
	return f32.Rectangle{Min: origin, Max: origin.Add(c.Size)}
}

// rectOf returns the rectangle of a widget placed in this frame, or
// the empty rectangle at the origin.
func (u *UI) rectOf(id ID) f32.Rectangle {
	if n, ok := u.graph.placed(id, u.frame); ok {
		return n.rect
	}
	return f32.Rectangle{}
}
