// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag identifies the receiver of routed events. Widget
// identities are used as tags, so a tag must be comparable
// and stable across frames.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
