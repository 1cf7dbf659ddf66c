// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/io/event"
	"github.com/flodiebold/conrod/io/pointer"
	"github.com/flodiebold/conrod/theme"
	"github.com/flodiebold/conrod/widget"
)

// Script describes a window with one toggle and the pointer input
// of each frame.
type Script struct {
	Width  float32      `yaml:"width"`
	Height float32      `yaml:"height"`
	Toggle ToggleScript `yaml:"toggle"`
	Frames []Frame      `yaml:"frames"`
}

type ToggleScript struct {
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
	Label   string  `yaml:"label"`
	Value   bool    `yaml:"value"`
	Enabled *bool   `yaml:"enabled"`
}

type Frame struct {
	Events []Event `yaml:"events"`
}

// Event is a pointer event. A press without buttons presses the
// primary button.
type Event struct {
	Kind   pointer.Kind    `yaml:"kind"`
	X      float32         `yaml:"x"`
	Y      float32         `yaml:"y"`
	Button pointer.Buttons `yaml:"button"`
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	s, err := DecodeScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeScript parses a YAML script.
func DecodeScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := new(Script)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty script")
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("script: invalid window size %vx%v", s.Width, s.Height)
	}
	if s.Toggle.Width <= 0 || s.Toggle.Height <= 0 {
		return nil, fmt.Errorf("script: invalid toggle size %vx%v", s.Toggle.Width, s.Toggle.Height)
	}
	return s, nil
}

// Run replays the script and returns the toggle's final value. The
// value is fed back into the toggle after every frame, the way an
// application owning it would.
func Run(s *Script, th *theme.Theme, log logrus.FieldLogger) bool {
	ui := widget.NewUI(th, widget.WithLogger(log))
	size := f32.Pt(s.Width, s.Height)
	value := s.Toggle.Value
	enabled := s.Toggle.Enabled == nil || *s.Toggle.Enabled
	var slot widget.IndexSlot

	frame := func(n int) {
		gtx := ui.Begin(size)
		changes := widget.NewToggle(value).
			WithEnabled(enabled).
			WithLabel(s.Toggle.Label).
			WithPlacement(widget.At(f32.Pt(s.Toggle.X, s.Toggle.Y))).
			WithSize(f32.Pt(s.Toggle.Width, s.Toggle.Height)).
			Set(slot.Get(gtx), gtx)
		for v := range changes.All() {
			log.WithFields(logrus.Fields{"frame": n, "value": v}).Info("toggled")
			value = v
		}
		ui.End()
	}

	// Input is hit tested against the previous frame, so lay the
	// toggle out once before replaying.
	frame(0)
	var buttons pointer.Buttons
	var t time.Duration
	for i, f := range s.Frames {
		for _, e := range f.Events {
			t += time.Millisecond
			ui.Queue(pointerEvent(e, &buttons, t))
		}
		frame(i + 1)
	}
	return value
}

// pointerEvent converts e, tracking the held buttons.
func pointerEvent(e Event, held *pointer.Buttons, t time.Duration) event.Event {
	b := e.Button
	switch e.Kind {
	case pointer.Press:
		if b == 0 {
			b = pointer.ButtonPrimary
		}
		*held |= b
	case pointer.Release:
		if b == 0 {
			b = *held
		}
		*held &^= b
	case pointer.Cancel:
		*held = 0
	}
	return pointer.Event{
		Kind:     e.Kind,
		Source:   pointer.Mouse,
		Time:     t,
		Buttons:  *held,
		Position: f32.Pt(e.X, e.Y),
	}
}
