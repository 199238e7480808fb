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

// Package source loads Mappings from the supported input formats.
package source

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/matthewpi/hotasmap"
)

// Format is the format of a Mapping source.
type Format string

const (
	// Blank creates an empty mapping, for pen-and-paper editing.
	Blank Format = "blank"
	// Debug fills every box with text to check the layout.
	Debug Format = "debug"
	// Demo labels every control with its own name.
	Demo Format = "demo"
	// Elite reads an Elite:Dangerous binding file (.binds).
	Elite Format = "ed"
	// JSON reads a JSON mapping, the same format produced by showmapping.
	JSON Format = "json"
)

// formatDescriptions holds the help text of every Format.
var formatDescriptions = map[Format]string{
	Blank: "Create a blank mapping (for pen-and-paper editing)",
	Debug: "Fill all boxes with text",
	Demo:  "Demonstrate by printing switch names",
	Elite: "Elite:Dangerous binding file (.binds)",
	JSON:  "JSON (.json; same format produced by --showmapping)",
}

var (
	// ErrUnknownFormat is returned when a Format is not supported.
	ErrUnknownFormat = errors.New("source: unknown format")
	// ErrInputRequired is returned when a Format needs an input file but none
	// was given.
	ErrInputRequired = errors.New("source: input file required")
)

// Formats returns every supported Format, sorted by name.
func Formats() []Format {
	res := make([]Format, 0, len(formatDescriptions))
	for f := range formatDescriptions {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := formatDescriptions[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Description returns the help text of the Format.
func (f Format) Description() string {
	return formatDescriptions[f]
}

// NeedsInput returns true if the Format reads an input file.
func (f Format) NeedsInput() bool {
	return f == Elite || f == JSON
}

// FormatHelp returns a one-line summary of every Format for use in help text.
func FormatHelp() string {
	var b strings.Builder
	for i, f := range Formats() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(string(f))
		b.WriteString(": ")
		b.WriteString(f.Description())
	}
	return b.String()
}

// Options configure Load.
type Options struct {
	// Format of the source.
	Format Format
	// Input is the path of the input file for formats that need one.
	Input string

	// EliteDevices are the device names used by the Elite:Dangerous binding
	// file.
	EliteDevices EliteDevices
	// Horizons includes the Elite:Dangerous Horizons surface vehicle
	// bindings.
	Horizons bool

	// Logger is used for logging, it defaults to a no-op logger.
	Logger *zap.Logger
}

// debugLines fill every box in Debug mode.
var debugLines = []string{
	"1 2 3 4 5 6 7 8 9 0",
	"A B C D E F G H I J",
	"a b c d e f g h i j",
	"N M O P Q R S T U V",
	"n m o p q r s t u v",
}

// Load loads a Mapping.
func Load(opts Options) (hotasmap.Mapping, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Format.NeedsInput() && opts.Input == "" {
		return nil, fmt.Errorf("%w for format %q", ErrInputRequired, opts.Format)
	}

	switch opts.Format {
	case Blank:
		log.Info("using blank mapping")
		return hotasmap.NewMapping(), nil
	case Debug:
		log.Info("using layout debug mapping")
		return fill(func(string) []string {
			return append([]string(nil), debugLines...)
		}), nil
	case Demo:
		log.Info("using demo mapping")
		return fill(func(name string) []string {
			return []string{name}
		}), nil
	case Elite:
		log.Info("using Elite Dangerous binding file", zap.String("input", opts.Input))
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		defer f.Close()
		m, err := ReadElite(f, opts.EliteDevices, opts.Horizons, log)
		if err != nil {
			return nil, fmt.Errorf("source: %q: %w", opts.Input, err)
		}
		return m, nil
	case JSON:
		log.Info("using JSON input file", zap.String("input", opts.Input))
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		defer f.Close()
		m, err := hotasmap.ReadMapping(f)
		if err != nil {
			return nil, fmt.Errorf("source: %q: %w", opts.Input, err)
		}
		m.CompleteBlanks()
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(opts.Format))
}

// fill returns a Mapping describing every control of every device using fn.
func fill(fn func(control string) []string) hotasmap.Mapping {
	m := hotasmap.NewMapping()
	for _, t := range hotasmap.Devices() {
		d := m.Device(t.Name)
		for _, name := range t.ControlNames() {
			d[name] = fn(name)
		}
	}
	return m
}
