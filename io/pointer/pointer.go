// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the pointer events delivered by the platform.

Events are queued on a widget.UI in the order they occurred. The
input router turns them into clicks and hover state for the widget
under the pointer.
*/
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/flodiebold/conrod/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	// For a Press that includes the newly pressed button; for a
	// Release it no longer includes the released button.
	Buttons Buttons
	// Position is the coordinates of the event in window
	// coordinates.
	Position f32.Point
}

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Leave is sent when the pointer leaves the window.
	Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (Event) ImplementsEvent() {}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Leave; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Leave:
		return "Leave"
	default:
		panic("unknown Type")
	}
}

// UnmarshalText parses a single kind name, case insensitively.
func (t *Kind) UnmarshalText(text []byte) error {
	for k := Cancel; k <= Leave; k <<= 1 {
		if strings.EqualFold(k.string(), string(text)) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("pointer: unknown event kind %q", text)
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

// UnmarshalText parses a '|' separated list of button names.
// Both "ButtonPrimary" and "primary" forms are accepted.
func (b *Buttons) UnmarshalText(text []byte) error {
	var set Buttons
	for _, name := range strings.Split(string(text), "|") {
		name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "button")
		switch name {
		case "":
		case "primary", "left":
			set |= ButtonPrimary
		case "secondary", "right":
			set |= ButtonSecondary
		case "tertiary", "middle":
			set |= ButtonTertiary
		default:
			return fmt.Errorf("pointer: unknown button %q", name)
		}
	}
	*b = set
	return nil
}
