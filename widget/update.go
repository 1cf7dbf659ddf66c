// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/flodiebold/conrod/f32"

// Kind names a widget type. Placing an ID with a different kind
// than in an earlier frame resets its state.
type Kind string

const (
	KindWindow            Kind = "Window"
	KindBorderedRectangle Kind = "BorderedRectangle"
	KindText              Kind = "Text"
	KindToggle            Kind = "Toggle"
)

// UpdateArgs are the arguments to a widget's update function.
type UpdateArgs[S any] struct {
	ID ID
	// State is the persistent state of the widget. Changes made
	// through it are kept for the next frame.
	State *S
	// Rect is where the widget was placed.
	Rect f32.Rectangle
	Gtx  *Context
}

// Update places the widget id of the given kind, creates its state
// with init if it has none and runs update. It returns the events
// reported by update.
//
// Update is the building block of the Set methods of widgets.
func Update[S, E any](gtx *Context, id ID, kind Kind, c Common, init func() S, update func(UpdateArgs[S]) E) E {
	n := gtx.ui.place(id, kind, c)
	st, ok := n.state.(*S)
	if !ok {
		s := init()
		st = &s
		n.state = st
	}
	// n is invalid once update allocates IDs.
	args := UpdateArgs[S]{ID: id, State: st, Rect: n.rect, Gtx: gtx}
	return update(args)
}

// State returns the persistent state of a widget placed in this
// frame, if it is of type S.
func State[S any](gtx *Context, id ID) (*S, bool) {
	n, ok := gtx.ui.graph.placed(id, gtx.ui.frame)
	if !ok {
		return nil, false
	}
	st, ok := n.state.(*S)
	return st, ok
}

// or returns *v, or def if v is nil.
func or[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
