// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"slices"
	"testing"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/internal/f32color"
	"github.com/flodiebold/conrod/io/event"
	"github.com/flodiebold/conrod/io/pointer"
	"github.com/flodiebold/conrod/op"
	"github.com/flodiebold/conrod/op/paint"
	"github.com/flodiebold/conrod/theme"
	"github.com/flodiebold/conrod/unit"
)

var (
	windowSize = f32.Pt(400, 300)
	toggleAt   = f32.Pt(100, 100)
	toggleSize = f32.Pt(100, 40)
	// inside is a point within the toggle.
	inside = f32.Pt(110, 110)
)

// toggleHarness drives a single toggle through frames.
type toggleHarness struct {
	ui   *UI
	slot IndexSlot
	id   ID
	ops  *op.Ops
}

func newToggleHarness(options ...Option) *toggleHarness {
	return &toggleHarness{ui: NewUI(theme.Default(), options...)}
}

func (h *toggleHarness) frame(t Toggle, events ...event.Event) TimesClicked {
	h.ui.Queue(events...)
	gtx := h.ui.Begin(windowSize)
	h.id = h.slot.Get(gtx)
	changes := t.WithPlacement(At(toggleAt)).WithSize(toggleSize).Set(h.id, gtx)
	h.ops = h.ui.End()
	return changes
}

func (h *toggleHarness) rectOp(t *testing.T) paint.RectOp {
	t.Helper()
	for _, o := range h.ops.List() {
		if r, ok := o.(paint.RectOp); ok {
			return r
		}
	}
	t.Fatal("no paint.RectOp in frame")
	return paint.RectOp{}
}

func clicks(p f32.Point, n int) []event.Event {
	var events []event.Event
	for i := 0; i < n; i++ {
		events = append(events,
			pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: p},
			pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: p},
		)
	}
	return events
}

func TestToggleClicks(t *testing.T) {
	h := newToggleHarness()
	// The first frame lays out the toggle; clicks are routed
	// against it from the next frame on.
	if got := h.frame(NewToggle(true)).Len(); got != 0 {
		t.Fatalf("got %d changes before any input", got)
	}
	changes := h.frame(NewToggle(true), clicks(inside, 3)...)
	got := slices.Collect(changes.All())
	if want := []bool{false, true, false}; !slices.Equal(got, want) {
		t.Errorf("got values %v, expected %v", got, want)
	}
	if got := h.frame(NewToggle(false)).Len(); got != 0 {
		t.Errorf("clicks delivered twice: %d changes", got)
	}
}

func TestToggleDisabledDropsClicks(t *testing.T) {
	h := newToggleHarness()
	h.frame(NewToggle(true))
	changes := h.frame(NewToggle(true).WithEnabled(false), clicks(inside, 2)...)
	if got := changes.Len(); got != 0 {
		t.Errorf("disabled toggle reported %d changes", got)
	}
	// The clicks are not held back for when the toggle is enabled.
	if got := h.frame(NewToggle(true)).Len(); got != 0 {
		t.Errorf("re-enabled toggle reported %d stale changes", got)
	}
}

func TestToggleClickOutside(t *testing.T) {
	h := newToggleHarness()
	h.frame(NewToggle(true))
	if got := h.frame(NewToggle(true), clicks(f32.Pt(10, 10), 1)...).Len(); got != 0 {
		t.Errorf("click outside reported %d changes", got)
	}
}

func TestToggleColorDarkening(t *testing.T) {
	shape := theme.Default().ShapeColor
	for _, tc := range []struct {
		label  string
		value  bool
		clicks int
		want   color.NRGBA
	}{
		{"true", true, 0, shape},
		{"false", false, 0, f32color.Darken(shape)},
		{"true clicked once", true, 1, f32color.Darken(shape)},
		{"false clicked once", false, 1, shape},
		{"true clicked twice", true, 2, shape},
	} {
		t.Run(tc.label, func(t *testing.T) {
			h := newToggleHarness()
			h.frame(NewToggle(tc.value))
			var events []event.Event
			if tc.clicks > 0 {
				events = clicks(inside, tc.clicks)
				// Move away so the toggle is not hovered.
				events = append(events, pointer.Event{Kind: pointer.Leave})
			}
			changes := h.frame(NewToggle(tc.value), events...)
			if got := changes.Len(); got != tc.clicks {
				t.Fatalf("got %d changes, expected %d", got, tc.clicks)
			}
			if got := h.rectOp(t).Color; got != tc.want {
				t.Errorf("color %v, expected %v", got, tc.want)
			}
		})
	}
	if f32color.Luminance(f32color.Darken(shape)) >= f32color.Luminance(shape)-.5 {
		t.Error("darkened shape color is not materially darker")
	}
}

func TestTogglePointerFeedback(t *testing.T) {
	shape := theme.Default().ShapeColor

	h := newToggleHarness()
	h.frame(NewToggle(true))
	h.frame(NewToggle(true), pointer.Event{Kind: pointer.Move, Position: inside})
	if got, want := h.rectOp(t).Color, f32color.Highlighted(shape); got != want {
		t.Errorf("hovered color %v, expected %v", got, want)
	}

	h.frame(NewToggle(true), pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: inside})
	if got, want := h.rectOp(t).Color, f32color.Clicked(shape); got != want {
		t.Errorf("pressed and hovered color %v, expected %v", got, want)
	}

	// Dragged off while pressed.
	h.frame(NewToggle(true), pointer.Event{Kind: pointer.Move, Buttons: pointer.ButtonPrimary, Position: f32.Pt(5, 5)})
	if got, want := h.rectOp(t).Color, f32color.Clicked(shape); got != want {
		t.Errorf("pressed color %v, expected %v", got, want)
	}

	h.frame(NewToggle(true), pointer.Event{Kind: pointer.Release, Position: f32.Pt(5, 5)})
	if got := h.rectOp(t).Color; got != shape {
		t.Errorf("idle color %v, expected %v", got, shape)
	}
}

func TestToggleSubWidgets(t *testing.T) {
	h := newToggleHarness()
	var rect, label ID
	for i := 0; i < 3; i++ {
		h.ui.Queue()
		gtx := h.ui.Begin(windowSize)
		h.id = h.slot.Get(gtx)
		NewToggle(true).WithLabel("Sound").WithPlacement(At(toggleAt)).WithSize(toggleSize).Set(h.id, gtx)

		st, ok := State[ToggleState](gtx, h.id)
		if !ok {
			t.Fatal("no toggle state")
		}
		r, ok := st.Rectangle()
		if !ok {
			t.Fatal("rectangle slot empty")
		}
		l, ok := st.Label()
		if !ok {
			t.Fatal("label slot empty")
		}
		if i == 0 {
			rect, label = r, l
		} else if r != rect || l != label {
			t.Errorf("frame %d: sub-widgets %v, %v; expected %v, %v", i, r, l, rect, label)
		}

		if k, _ := gtx.Kind(r); k != KindBorderedRectangle {
			t.Errorf("rectangle kind %q", k)
		}
		if k, _ := gtx.Kind(l); k != KindText {
			t.Errorf("label kind %q", k)
		}
		if p, _ := gtx.Parent(l); p != h.id {
			t.Errorf("label parent %v, expected %v", p, h.id)
		}
		tr, _ := gtx.Rect(h.id)
		rr, _ := gtx.Rect(r)
		lr, _ := gtx.Rect(l)
		if rr != tr {
			t.Errorf("rectangle at %v, expected %v", rr, tr)
		}
		if lr.Center() != tr.Center() {
			t.Errorf("label centered at %v, expected %v", lr.Center(), tr.Center())
		}
		ops := h.ui.End()
		if n := ops.Len(); n != 2 {
			t.Fatalf("got %d ops, expected 2", n)
		}
		if _, ok := ops.List()[1].(paint.TextOp); !ok {
			t.Errorf("label not drawn on top of the rectangle")
		}
	}
}

func TestToggleLabelComesAndGoes(t *testing.T) {
	h := newToggleHarness()
	h.frame(NewToggle(true).WithLabel("A"))
	gtx := h.ui.Begin(windowSize)
	NewToggle(true).WithPlacement(At(toggleAt)).WithSize(toggleSize).Set(h.id, gtx)
	st, _ := State[ToggleState](gtx, h.id)
	label, _ := st.Label()
	if _, ok := gtx.Kind(label); ok {
		t.Error("label placed without a label")
	}
	h.ui.End()

	gtx = h.ui.Begin(windowSize)
	NewToggle(true).WithLabel("B").WithPlacement(At(toggleAt)).WithSize(toggleSize).Set(h.id, gtx)
	st, _ = State[ToggleState](gtx, h.id)
	if l, _ := st.Label(); l != label {
		t.Errorf("label reappeared as %v, expected %v", l, label)
	}
	h.ops = h.ui.End()
	var txt string
	for _, o := range h.ops.List() {
		if to, ok := o.(paint.TextOp); ok {
			txt = to.Text
		}
	}
	if txt != "B" {
		t.Errorf("drew label %q, expected \"B\"", txt)
	}
}

func TestToggleClickOnLabel(t *testing.T) {
	h := newToggleHarness()
	h.frame(NewToggle(false).WithLabel("Label"))
	center := f32.Rectangle{Min: toggleAt, Max: toggleAt.Add(toggleSize)}.Center()
	changes := h.frame(NewToggle(false).WithLabel("Label"), clicks(center, 1)...)
	if v, ok := changes.Next(); !ok || !v {
		t.Errorf("click on label: got %v, %v; expected true, true", v, ok)
	}
}

func TestToggleStyleOverrides(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	h := newToggleHarness(WithMetric(unit.Metric{PxPerDp: 2, PxPerSp: 2}))
	h.frame(NewToggle(true).
		WithColor(red).
		WithBorder(3).
		WithBorderColor(blue).
		WithLabel("x").
		WithLabelColor(blue).
		WithLabelFontSize(10))
	r := h.rectOp(t)
	if r.Color != red || r.BorderColor != blue || r.Border != 6 {
		t.Errorf("got %v; expected red fill, blue 6px border", r)
	}
	var txt paint.TextOp
	for _, o := range h.ops.List() {
		if to, ok := o.(paint.TextOp); ok {
			txt = to
		}
	}
	if txt.Color != blue || txt.Size != 20 {
		t.Errorf("got %v; expected blue 20px label", txt)
	}
}

func TestToggleStyleResolve(t *testing.T) {
	th := theme.Default()
	got := ToggleStyle{}.Resolve(th)
	want := ResolvedToggleStyle{
		Color:         th.ShapeColor,
		Border:        th.BorderWidth,
		BorderColor:   th.BorderColor,
		LabelColor:    th.LabelColor,
		LabelFontSize: th.FontSize.Medium,
	}
	if got != want {
		t.Errorf("Resolve() = %+v, expected %+v", got, want)
	}
	size := unit.Sp(30)
	s := ToggleStyle{LabelFontSize: &size}
	if a, b := s.Resolve(th), s.Resolve(th); a != b || a.LabelFontSize != 30 {
		t.Errorf("Resolve not deterministic: %+v, %+v", a, b)
	}
}

func TestToggleDoesNotMutateDescription(t *testing.T) {
	h := newToggleHarness()
	h.frame(NewToggle(true))
	tg := NewToggle(true)
	h.frame(tg, clicks(inside, 1)...)
	if !tg.Value {
		t.Error("Set changed the description's value")
	}
}
