// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "strconv"

// ID identifies a widget in the graph of a UI. IDs are stable across
// frames and never reused. The zero ID identifies no widget.
type ID uint32

// IndexSlot lazily allocates an ID and remembers it. It is typically
// stored in the persistent state of a widget, one slot per sub-widget.
//
// The zero value is an empty slot.
type IndexSlot struct {
	id ID
}

// Get returns the slot's ID, allocating it from gtx the first time.
// A slot must not be shared between widgets: every later call returns
// the first ID regardless of how gtx changed.
func (s *IndexSlot) Get(gtx *Context) ID {
	if s.id == 0 {
		s.id = gtx.NewID()
	}
	return s.id
}

// ID returns the slot's ID without allocating, and reports whether
// the slot is filled.
func (s IndexSlot) ID() (ID, bool) {
	return s.id, s.id != 0
}

func (id ID) String() string {
	if id == 0 {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}
