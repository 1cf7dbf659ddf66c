// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"iter"
	"math"
)

// TimesClicked is returned by Toggle.Set. It yields the new value of
// the toggle for each click since the previous frame: starting from
// the value the toggle was set with, every click flips it once.
//
// A TimesClicked is consumed by Next. Once exhausted it stays
// exhausted; a copy taken before consuming replays the same values.
type TimesClicked struct {
	state bool
	count uint16
}

// NewTimesClicked returns the values of a toggle at state clicked n
// times. n is clamped to [0, math.MaxUint16].
func NewTimesClicked(state bool, n int) TimesClicked {
	n = min(max(n, 0), math.MaxUint16)
	return TimesClicked{state: state, count: uint16(n)}
}

// Next returns the next value, or false, false when exhausted.
func (t *TimesClicked) Next() (value, ok bool) {
	if t.count == 0 {
		return false, false
	}
	t.count--
	t.state = !t.state
	return t.state, true
}

// Len returns the number of values left.
func (t TimesClicked) Len() int {
	return int(t.count)
}

// Last returns the final value without consuming t, or false, false
// if t is exhausted.
func (t TimesClicked) Last() (value, ok bool) {
	if t.count == 0 {
		return false, false
	}
	return t.state != (t.count%2 == 1), true
}

// All returns an iterator over the remaining values. Iterating
// consumes t.
func (t *TimesClicked) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for {
			v, ok := t.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (t TimesClicked) String() string {
	return fmt.Sprintf("TimesClicked{state: %v, count: %d}", t.state, t.count)
}
