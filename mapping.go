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

package hotasmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Descriptions maps a control name to the lines of text describing it.
type Descriptions map[string][]string

// Mapping maps a device name to the Descriptions of its controls.
//
// A Mapping is also the JSON input and `showmapping` output format:
//
//	{"thrustmaster_warthog_joystick": {"S1_Trigger_FirstStage": ["Fire 1"]}}
type Mapping map[string]Descriptions

// NewMapping returns a Mapping with an empty entry for every known device.
func NewMapping() Mapping {
	m := make(Mapping, len(deviceTypes))
	for _, t := range deviceTypes {
		m[t.Name] = Descriptions{}
	}
	return m
}

// Device returns the Descriptions of a device, creating them if required.
func (m Mapping) Device(name string) Descriptions {
	d, ok := m[name]
	if !ok || d == nil {
		d = Descriptions{}
		m[name] = d
	}
	return d
}

// Add appends a line of text to a control's description.
func (m Mapping) Add(device, control, text string) {
	d := m.Device(device)
	d[control] = append(d[control], text)
}

// CompleteBlanks adds an empty description for every control of every known
// device that is not already present. Existing entries are left alone.
func (m Mapping) CompleteBlanks() {
	for _, t := range deviceTypes {
		d := m.Device(t.Name)
		for _, c := range t.Controls {
			if _, ok := d[c.Name]; !ok {
				d[c.Name] = []string{}
			}
		}
	}
}

// WriteJSON writes the Mapping as indented JSON with sorted keys.
func (m Mapping) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(m)
}

// ReadMapping decodes a JSON Mapping. Anything but whitespace after the
// mapping is an error.
func ReadMapping(r io.Reader) (Mapping, error) {
	var m Mapping
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data")
		}
		return nil, fmt.Errorf("hotasmap: trailing data after mapping: %w", err)
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// Merge returns a new Descriptions containing the entries of every argument,
// later arguments win on duplicate control names.
func Merge(ds ...Descriptions) Descriptions {
	res := Descriptions{}
	for _, d := range ds {
		for k, v := range d {
			res[k] = v
		}
	}
	return res
}

// MergePlacements is the same as Merge but for control placements.
func MergePlacements(ps ...map[string]Control) map[string]Control {
	res := map[string]Control{}
	for _, p := range ps {
		for k, v := range p {
			res[k] = v
		}
	}
	return res
}
