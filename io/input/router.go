// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements input routing and tracking of pointer
state for a window.

The platform queues raw pointer events on the Router. At the start of
every frame the Router replays them against the hit areas recorded in
the previous frame and derives, per event Tag, the completed clicks and
the current hover and press state.
*/
package input

import (
	"time"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/io/event"
	"github.com/flodiebold/conrod/io/pointer"
)

// Router tracks the areas of widgets laid out in the previous frame
// and routes pointer events to them.
//
// The zero value is ready to use.
type Router struct {
	areas []Area
	queue []pointer.Event

	pos     f32.Point
	inside  bool
	buttons pointer.Buttons
	// captures holds, per button, the tag under the pointer when the
	// button was pressed.
	captures [len(buttonList)]event.Tag

	clicks map[event.Tag][]Click
}

// Area is a hit area for a tag. Areas are listed back to front; later
// areas receive events before earlier ones.
type Area struct {
	Tag  event.Tag
	Rect f32.Rectangle
}

// Click represents a press followed by a release of the same button
// over the same tag.
type Click struct {
	// Buttons is the button that completed the click.
	Buttons  pointer.Buttons
	Source   pointer.Source
	Position f32.Point
	Time     time.Duration
}

// PointerState describes the pointer relative to a tag.
type PointerState struct {
	Position f32.Point
	// Hovered reports whether the pointer is over the tag's area.
	Hovered bool
	// Pressed reports whether the primary button is held down
	// after being pressed over the tag.
	Pressed bool
}

var buttonList = [...]pointer.Buttons{
	pointer.ButtonPrimary,
	pointer.ButtonSecondary,
	pointer.ButtonTertiary,
}

// Queue events to be routed at the next call to Frame. Events other
// than pointer.Event are ignored.
func (r *Router) Queue(events ...event.Event) {
	for _, e := range events {
		if pe, ok := e.(pointer.Event); ok {
			r.queue = append(r.queue, pe)
		}
	}
}

// Frame discards the clicks of the previous frame and routes the
// queued events against the current areas.
func (r *Router) Frame() {
	for k := range r.clicks {
		delete(r.clicks, k)
	}
	for _, e := range r.queue {
		r.push(e)
	}
	r.queue = r.queue[:0]
}

// SetAreas replaces the hit areas with the areas laid out in the
// current frame. They take effect at the next call to Frame.
func (r *Router) SetAreas(areas []Area) {
	r.areas = append(r.areas[:0], areas...)
}

// Clicks returns the clicks routed to tag by the most recent Frame
// for any of the buttons.
func (r *Router) Clicks(tag event.Tag, buttons pointer.Buttons) []Click {
	var clicks []Click
	for _, c := range r.clicks[tag] {
		if c.Buttons&buttons != 0 {
			clicks = append(clicks, c)
		}
	}
	return clicks
}

// Pointer returns the pointer state relative to tag. It reports false
// if the pointer neither hovers nor presses tag.
func (r *Router) Pointer(tag event.Tag) (PointerState, bool) {
	s := PointerState{
		Position: r.pos,
		Hovered:  r.inside && r.hit(r.pos) == tag,
		Pressed:  r.buttons.Contain(pointer.ButtonPrimary) && r.captures[0] == tag,
	}
	return s, s.Hovered || s.Pressed
}

// Position returns the last known pointer position and whether the
// pointer is inside the window.
func (r *Router) Position() (f32.Point, bool) {
	return r.pos, r.inside
}

func (r *Router) push(e pointer.Event) {
	switch e.Kind {
	case pointer.Move:
		r.pos, r.inside = e.Position, true
	case pointer.Press:
		r.pos, r.inside = e.Position, true
		btns := e.Buttons
		if e.Source == pointer.Touch {
			btns = pointer.ButtonPrimary
		}
		pressed := btns &^ r.buttons
		r.buttons |= pressed
		tag := r.hit(e.Position)
		for i, b := range buttonList {
			if pressed.Contain(b) {
				r.captures[i] = tag
			}
		}
	case pointer.Release:
		r.pos = e.Position
		btns := e.Buttons
		if e.Source == pointer.Touch {
			btns = 0
			r.inside = false
		}
		released := r.buttons &^ btns
		r.buttons &^= released
		tag := r.hit(e.Position)
		for i, b := range buttonList {
			if !released.Contain(b) {
				continue
			}
			captured := r.captures[i]
			r.captures[i] = nil
			if captured == nil || captured != tag {
				continue
			}
			if r.clicks == nil {
				r.clicks = make(map[event.Tag][]Click)
			}
			r.clicks[tag] = append(r.clicks[tag], Click{
				Buttons:  b,
				Source:   e.Source,
				Position: e.Position,
				Time:     e.Time,
			})
		}
	case pointer.Cancel:
		r.buttons = 0
		r.captures = [len(buttonList)]event.Tag{}
	case pointer.Leave:
		r.inside = false
	}
}

// hit returns the front-most tag whose area contain pos, or nil.
func (r *Router) hit(pos f32.Point) event.Tag {
	for i := len(r.areas) - 1; i >= 0; i-- {
		if a := r.areas[i]; pos.In(a.Rect) {
			return a.Tag
		}
	}
	return nil
}
