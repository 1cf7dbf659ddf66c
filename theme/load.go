// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flodiebold/conrod/unit"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// file is the YAML form of a Theme. Absent keys keep the
// default value.
type file struct {
	Name        string      `yaml:"name"`
	Background  *colorValue `yaml:"background"`
	ShapeColor  *colorValue `yaml:"shape_color"`
	BorderColor *colorValue `yaml:"border_color"`
	BorderWidth *float32    `yaml:"border_width"`
	LabelColor  *colorValue `yaml:"label_color"`
	FontSize    struct {
		Large  *float32 `yaml:"large"`
		Medium *float32 `yaml:"medium"`
		Small  *float32 `yaml:"small"`
	} `yaml:"font_size"`
}

type colorValue color.NRGBA

// Load reads a theme file. See Decode for the format.
func Load(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode a YAML theme. Keys that are absent keep their value from
// Default. Colors are either names from the SVG 1.1 color list,
// such as "steelblue", or hexadecimal in the forms #rgb, #rrggbb
// and #rrggbbaa.
//
//	name: Slate
//	shape_color: lightsteelblue
//	border_width: 2
//	font_size:
//	  medium: 16
func Decode(r io.Reader) (*Theme, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t := Default()
	if f.Name != "" {
		t.Name = f.Name
	}
	setColor(&t.Background, f.Background)
	setColor(&t.ShapeColor, f.ShapeColor)
	setColor(&t.BorderColor, f.BorderColor)
	setColor(&t.LabelColor, f.LabelColor)
	if f.BorderWidth != nil {
		if *f.BorderWidth < 0 {
			return nil, fmt.Errorf("theme: negative border_width %g", *f.BorderWidth)
		}
		t.BorderWidth = unit.Dp(*f.BorderWidth)
	}
	for _, s := range []struct {
		name string
		v    *float32
		dst  *unit.Sp
	}{
		{"large", f.FontSize.Large, &t.FontSize.Large},
		{"medium", f.FontSize.Medium, &t.FontSize.Medium},
		{"small", f.FontSize.Small, &t.FontSize.Small},
	} {
		if s.v == nil {
			continue
		}
		if *s.v <= 0 {
			return nil, fmt.Errorf("theme: non-positive font_size.%s %g", s.name, *s.v)
		}
		*s.dst = unit.Sp(*s.v)
	}
	return t, nil
}

// ParseColor parses a color name or a hexadecimal color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	switch len(h) {
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c *colorValue) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	col, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = colorValue(col)
	return nil
}

func setColor(dst *color.NRGBA, v *colorValue) {
	if v != nil {
		*dst = color.NRGBA(*v)
	}
}
