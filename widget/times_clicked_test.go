// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"slices"
	"testing"
)

func TestTimesClicked(t *testing.T) {
	for _, state := range []bool{false, true} {
		for k := 0; k <= 5; k++ {
			tc := NewTimesClicked(state, k)
			if got := tc.Len(); got != k {
				t.Fatalf("Len() = %d, expected %d", got, k)
			}
			want := !state
			for i := 0; i < k; i++ {
				v, ok := tc.Next()
				if !ok {
					t.Fatalf("state %v count %d: exhausted after %d values", state, k, i)
				}
				if v != want {
					t.Errorf("state %v count %d: value %d is %v, expected %v", state, k, i, v, want)
				}
				want = !want
			}
			for i := 0; i < 3; i++ {
				if v, ok := tc.Next(); ok {
					t.Errorf("state %v count %d: extra value %v", state, k, v)
				}
			}
		}
	}
}

func TestTimesClickedEmpty(t *testing.T) {
	tc := NewTimesClicked(true, 0)
	if _, ok := tc.Next(); ok {
		t.Error("empty stream yielded a value")
	}
	if _, ok := tc.Last(); ok {
		t.Error("empty stream has a last value")
	}
}

func TestTimesClickedSaturates(t *testing.T) {
	if got := NewTimesClicked(false, math.MaxUint16+10).Len(); got != math.MaxUint16 {
		t.Errorf("Len() = %d, expected %d", got, math.MaxUint16)
	}
	if got := NewTimesClicked(false, -1).Len(); got != 0 {
		t.Errorf("Len() = %d for negative count", got)
	}
}

func TestTimesClickedLast(t *testing.T) {
	tc := NewTimesClicked(true, 3)
	last, ok := tc.Last()
	if !ok || last != false {
		t.Errorf("Last() = %v, %v; expected false, true", last, ok)
	}
	if tc.Len() != 3 {
		t.Errorf("Last consumed the stream: %d left", tc.Len())
	}
	tc.Next()
	if last, _ := tc.Last(); last != false {
		t.Errorf("Last() after Next = %v, expected false", last)
	}
	tc = NewTimesClicked(true, 4)
	if last, _ := tc.Last(); last != true {
		t.Errorf("Last() of 4 clicks = %v, expected true", last)
	}
}

func TestTimesClickedAll(t *testing.T) {
	tc := NewTimesClicked(false, 4)
	got := slices.Collect(tc.All())
	if want := []bool{true, false, true, false}; !slices.Equal(got, want) {
		t.Errorf("All() = %v, expected %v", got, want)
	}
	if tc.Len() != 0 {
		t.Errorf("All left %d values", tc.Len())
	}

	// Stopping early keeps the rest.
	tc = NewTimesClicked(false, 4)
	for range tc.All() {
		break
	}
	if tc.Len() != 3 {
		t.Errorf("early break left %d values, expected 3", tc.Len())
	}
}
