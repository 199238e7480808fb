//
// Copyright (c) 2024 Matthew Penner
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package hotasmap describes the HOTAS devices that binding diagrams are drawn
// for and the Mappings of their controls to text.
package hotasmap

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// ControlType describes how a physical control behaves, it is used to pick the
// color a control's label is drawn with.
type ControlType string

const (
	// Unknown is used for controls that have no known behaviour, like the
	// diagonals of a hat switch. They are drawn like Momentary controls.
	Unknown ControlType = ""
	// Analogue is an axis, slider or rotary control.
	Analogue ControlType = "~"
	// Momentary is a switch that deactivates when released.
	Momentary ControlType = "."
	// Sticky is a switch that keeps its position when released.
	Sticky ControlType = "+"
)

// String satisfies the fmt.Stringer interface.
func (t ControlType) String() string {
	switch t {
	case Analogue:
		return "analogue"
	case Momentary:
		return "momentary"
	case Sticky:
		return "sticky"
	}
	return "unknown"
}

// Control represents a single labelled control on a device diagram.
type Control struct {
	// Name of the Control, this is the key used by mappings.
	Name string

	// Left and Top edge of the text box on the template image.
	Left, Top int

	// Width and Height of the text box on the template image.
	Width, Height int

	// GameKey is the Elite:Dangerous key name bound to the Control, for
	// example `Joy_YAxis`. Controls without a GameKey can only be labelled
	// by the demo, debug and JSON sources.
	GameKey string

	// Type of the Control.
	Type ControlType

	// HJust and VJust position the text within the box, 0 is left/top, 0.5
	// is centred and 1 is right/bottom.
	HJust, VJust float64
}

// Box returns the text box of the Control.
func (c Control) Box() image.Rectangle {
	return image.Rect(c.Left, c.Top, c.Left+c.Width, c.Top+c.Height)
}

// Label is a free-standing text label drawn on a diagram.
type Label struct {
	Text     string
	X, Y     float64
	FontSize float64
	Color    RGB
	HJust    float64
	VJust    float64
}

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

var _ color.Color = RGB{}

// RGBA satisfies the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// DeviceType represents a type of input device that can be drawn.
type DeviceType struct {
	// Name of the Device Type, used as the top-level key of a Mapping.
	Name string

	// Controls of the device, in catalogue order.
	Controls []Control

	// Labels are always drawn on the device's diagram.
	Labels []Label
}

// Control returns the Control with the given name.
func (t DeviceType) Control(name string) (Control, bool) {
	for _, c := range t.Controls {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}

// ControlNames returns the name of every Control on the device in catalogue
// order.
func (t DeviceType) ControlNames() []string {
	names := make([]string, len(t.Controls))
	for i, c := range t.Controls {
		names[i] = c.Name
	}
	return names
}

// ControlsForKey returns every Control bound to a game key. A single key can
// label more than one control, for example both directions of an axis.
func (t DeviceType) ControlsForKey(key string) []Control {
	if key == "" {
		return nil
	}
	var res []Control
	for _, c := range t.Controls {
		if c.GameKey == key {
			res = append(res, c)
		}
	}
	return res
}

// Placements returns the Controls of the device indexed by name.
func (t DeviceType) Placements() map[string]Control {
	m := make(map[string]Control, len(t.Controls))
	for _, c := range t.Controls {
		m[c.Name] = c
	}
	return m
}

// ParseRGB parses a color from three comma-separated values in the range
// 0-255, for example "255,0,255".
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("hotasmap: color %q is not a tuple of length 3", s)
	}
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("hotasmap: color %q: %w", s, err)
		}
		if n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("hotasmap: color %q: value %d not in range 0-255", s, n)
		}
		v[i] = uint8(n)
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// String returns the color in the format accepted by ParseRGB.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}
