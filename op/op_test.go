// SPDX-License-Identifier: Unlicense OR MIT

package op_test

import (
	"testing"

	"github.com/flodiebold/conrod/op"
	"github.com/flodiebold/conrod/op/paint"
)

func TestOpsReset(t *testing.T) {
	ops := new(op.Ops)
	paint.RectOp{}.Add(ops)
	paint.TextOp{Text: "x"}.Add(ops)
	if got := ops.Len(); got != 2 {
		t.Fatalf("got %d ops, expected 2", got)
	}
	if _, ok := ops.List()[1].(paint.TextOp); !ok {
		t.Errorf("second op is %T, expected paint.TextOp", ops.List()[1])
	}
	v := ops.Version()
	ops.Reset()
	if ops.Len() != 0 {
		t.Errorf("Reset left %d ops", ops.Len())
	}
	if ops.Version() != v+1 {
		t.Errorf("version %d after Reset, expected %d", ops.Version(), v+1)
	}
}
