// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the widget graph and the widgets that live
in it.

Widgets are described anew every frame by plain values such as Toggle.
A description owns no identity; calling its Set method with an ID
places the widget in the graph owned by a UI, finds or creates the
widget's persistent state and returns the events that happened to the
widget since the previous frame.

A frame looks like this:

	u := widget.NewUI(theme.Default())
	var toggle widget.IndexSlot
	value := true

	// For every frame:
	u.Queue(events...)
	gtx := u.Begin(f32.Pt(640, 480))
	t := widget.NewToggle(value).WithLabel("Sound").WithSize(f32.Pt(120, 40))
	changes := t.Set(toggle.Get(gtx), gtx)
	for v, ok := changes.Next(); ok; v, ok = changes.Next() {
		value = v
	}
	ops := u.End()

Widgets own their sub-widgets through IndexSlots kept in their
persistent state, so callers never name the rectangle and label a
Toggle is drawn with.
*/
package widget
