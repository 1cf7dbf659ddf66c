// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op implements operations for updating a user interface.

Widgets describe what to draw by adding operations, or ops, to an
Ops list while they are updated. At the end of a frame the list
holds a complete description of the user interface, in back to front
order, ready to be executed by a rendering backend.

Drawing a bordered square:

	import "github.com/flodiebold/conrod/op/paint"

	ops := new(op.Ops)
	paint.RectOp{
		Rect:        f32.Rect(0, 0, 100, 100),
		Color:       color.NRGBA{R: 0x80, A: 0xff},
		Border:      1,
		BorderColor: color.NRGBA{A: 0xff},
	}.Add(ops)

The list is reused across frames: Reset it before recording a new
frame.

*/
package op

// Ops holds a list of operations.
type Ops struct {
	// version is incremented at each Reset.
	version int
	list    []Op
}

// Op is the marker interface for operations.
type Op interface {
	ImplementsOp()
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded operations.
func (o *Ops) Reset() {
	o.version++
	for i := range o.list {
		o.list[i] = nil
	}
	o.list = o.list[:0]
}

// Write appends an operation. It is used by operation types such
// as paint.RectOp.
func (o *Ops) Write(op Op) {
	o.list = append(o.list, op)
}

// List returns the recorded operations in the order they were
// added. The slice is only valid until the next Reset.
func (o *Ops) List() []Op {
	return o.list
}

// Len returns the number of recorded operations.
func (o *Ops) Len() int {
	return len(o.list)
}

// Version returns the number of times Reset has been called.
func (o *Ops) Version() int {
	return o.version
}
