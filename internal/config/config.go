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

// Package config holds the configuration of hotasmap, it can be read from a
// YAML file and overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/matthewpi/hotasmap"
	"github.com/matthewpi/hotasmap/sheet"
	"github.com/matthewpi/hotasmap/source"
)

// Default file locations, relative to the working directory.
var (
	TemplateDir = "templates"
	OutputDir   = "output"

	DefaultJoystickTemplate = filepath.Join(TemplateDir, "TEMPLATE_tmw_joystick.png")
	DefaultThrottleTemplate = filepath.Join(TemplateDir, "TEMPLATE_tmw_throttle.png")
	DefaultJoystickOutput   = filepath.Join(OutputDir, "output_joystick.png")
	DefaultThrottleOutput   = filepath.Join(OutputDir, "output_throttle.png")
	DefaultCompositeOutput  = filepath.Join(OutputDir, "output_composite.png")
)

// Default colors.
var (
	DefaultTitleColor     = RGB{R: 0, G: 100, B: 0}
	DefaultAnalogueColor  = RGB{R: 255, G: 0, B: 255}
	DefaultMomentaryColor = RGB{R: 255, G: 0, B: 0}
	DefaultStickyColor    = RGB{R: 0, G: 0, B: 255}
)

// DefaultWrapLineSep separates the lines of a description when wrapping.
const DefaultWrapLineSep = " ● "

// Config holds all hotasmap configuration.
type Config struct {
	// Format of the mapping source.
	Format source.Format `yaml:"format"`
	// Input is the mapping source file.
	Input string `yaml:"input"`

	Outputs   OutputConfig   `yaml:"outputs"`
	Templates TemplateConfig `yaml:"templates"`
	Elite     EliteConfig    `yaml:"elite"`
	Cosmetic  CosmeticConfig `yaml:"cosmetic"`
	Debug     DebugConfig    `yaml:"debug"`
}

// OutputConfig holds the paths of the generated images.
type OutputConfig struct {
	Joystick  string `yaml:"joystick"`
	Throttle  string `yaml:"throttle"`
	Composite string `yaml:"composite"`
}

// TemplateConfig holds the paths of the template images.
type TemplateConfig struct {
	Joystick string `yaml:"joystick"`
	Throttle string `yaml:"throttle"`
}

// EliteConfig configures reading Elite:Dangerous binding files.
type EliteConfig struct {
	Devices  source.EliteDevices `yaml:"devices"`
	Horizons bool                `yaml:"horizons"`
}

// CosmeticConfig configures how diagrams look.
type CosmeticConfig struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	ExtraText string `yaml:"extra_text"`

	TitleColor     RGB `yaml:"rgb_title"`
	AnalogueColor  RGB `yaml:"rgb_analogue"`
	MomentaryColor RGB `yaml:"rgb_momentary"`
	StickyColor    RGB `yaml:"rgb_sticky"`

	// Font is a TrueType or OpenType font file, empty uses the embedded Go
	// Bold font.
	Font        string  `yaml:"ttf"`
	Wrap        bool    `yaml:"wrap"`
	WrapLineSep string  `yaml:"wrap_linesep"`
	Scale       float64 `yaml:"scale"`
}

// DebugConfig holds debugging options.
type DebugConfig struct {
	ShowMapping bool   `yaml:"show_mapping"`
	ShowRects   bool   `yaml:"show_rects"`
	Verbose     bool   `yaml:"verbose"`
	Profile     string `yaml:"profile"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format: source.JSON,
		Outputs: OutputConfig{
			Joystick:  DefaultJoystickOutput,
			Throttle:  DefaultThrottleOutput,
			Composite: DefaultCompositeOutput,
		},
		Templates: TemplateConfig{
			Joystick: DefaultJoystickTemplate,
			Throttle: DefaultThrottleTemplate,
		},
		Elite: EliteConfig{
			Devices: source.DefaultEliteDevices(),
		},
		Cosmetic: CosmeticConfig{
			TitleColor:     DefaultTitleColor,
			AnalogueColor:  DefaultAnalogueColor,
			MomentaryColor: DefaultMomentaryColor,
			StickyColor:    DefaultStickyColor,
			WrapLineSep:    DefaultWrapLineSep,
			Scale:          1,
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFile reads a YAML configuration file over the current values, keys
// missing from the file are left alone.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: failed to parse %q: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	f, err := source.ParseFormat(string(c.Format))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Format = f
	if f.NeedsInput() && c.Input == "" {
		return fmt.Errorf("config: must specify input unless using modes %v: %w",
			[]source.Format{source.Blank, source.Debug, source.Demo}, source.ErrInputRequired)
	}
	if c.Cosmetic.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Cosmetic.Scale)
	}
	switch c.Debug.Profile {
	case "", ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("config: unknown profile %q", c.Debug.Profile)
	}
	return nil
}

// Profile modes.
const (
	ProfileCPU = "cpu"
	ProfileMem = "mem"
)

// SourceOptions returns the options used to load the mapping.
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Format:       c.Format,
		Input:        c.Input,
		EliteDevices: c.Elite.Devices,
		Horizons:     c.Elite.Horizons,
	}
}

// RGB is a color that can be set from a flag or YAML as "r,g,b".
type RGB hotasmap.RGB

// Color returns the color as a hotasmap.RGB.
func (c RGB) Color() hotasmap.RGB {
	return hotasmap.RGB(c)
}

// String satisfies the pflag.Value interface.
func (c *RGB) String() string {
	return hotasmap.RGB(*c).String()
}

// Set satisfies the pflag.Value interface.
func (c *RGB) Set(s string) error {
	v, err := hotasmap.ParseRGB(s)
	if err != nil {
		return err
	}
	*c = RGB(v)
	return nil
}

// Type satisfies the pflag.Value interface.
func (*RGB) Type() string {
	return "rgb"
}

// UnmarshalYAML satisfies the yaml.Unmarshaler interface.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.Set(s)
}

// MarshalYAML satisfies the yaml.Marshaler interface.
func (c RGB) MarshalYAML() (interface{}, error) {
	return hotasmap.RGB(c).String(), nil
}

// SheetOptions returns the options used to draw diagrams.
func (c *Config) SheetOptions() sheet.Options {
	return sheet.Options{
		Font:        c.Cosmetic.Font,
		Wrap:        c.Cosmetic.Wrap,
		WrapLineSep: c.Cosmetic.WrapLineSep,
		ShowRects:   c.Debug.ShowRects,
		Scale:       c.Cosmetic.Scale,
		Palette: sheet.Palette{
			Analogue:  c.Cosmetic.AnalogueColor.Color(),
			Momentary: c.Cosmetic.MomentaryColor.Color(),
			Sticky:    c.Cosmetic.StickyColor.Color(),
			Title:     c.Cosmetic.TitleColor.Color(),
		},
	}
}

// Job returns the diagrams to generate.
func (c *Config) Job() sheet.Job {
	return sheet.Job{
		JoystickTemplate: c.Templates.Joystick,
		ThrottleTemplate: c.Templates.Throttle,
		JoystickOutput:   c.Outputs.Joystick,
		ThrottleOutput:   c.Outputs.Throttle,
		CompositeOutput:  c.Outputs.Composite,
		Titles: sheet.Titles{
			Title:     c.Cosmetic.Title,
			Subtitle:  c.Cosmetic.Subtitle,
			ExtraText: c.Cosmetic.ExtraText,
		},
	}
}
