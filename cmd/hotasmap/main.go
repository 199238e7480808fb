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

// hotasmap generates Thrustmaster Warthog (joystick, throttle) binding
// diagrams, the joystick diagram also carries the MFG Crosswind rudder pedal
// labels.
//
// Usage:
//
//	hotasmap --format demo [--showmapping]
//	hotasmap --format json --input MYFILE.json
//	hotasmap --format ed --input Custom.2.0.binds
//	hotasmap --config hotasmap.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matthewpi/hotasmap/internal/config"
	"github.com/matthewpi/hotasmap/sheet"
	"github.com/matthewpi/hotasmap/source"
)

var (
	// cfg is bound to the command-line flags.
	cfg = config.Default()
	// configFile is an optional YAML file read before applying flags.
	configFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hotasmap",
	Short: "Generate Thrustmaster Warthog binding diagrams",
	Long: fmt.Sprintf(`Generate Thrustmaster Warthog (joystick, throttle) binding pictures. Also
adds MFG Crosswind rudder pedal labels.

For a simple example with no definitions, run
    %[1]s --format demo [--showmapping]
... this creates pictures labelled with the switch names.

As input, it can take a JSON mapping:
    %[1]s --format json --input MYFILE.json
or an Elite:Dangerous bind file:
    %[1]s --format ed --input Custom.2.0.binds
For Elite, the best thing to do is to create the bindings within Elite
itself, then aim this program at the custom binding file.

To find your Elite:Dangerous custom binding file, use:
    dir custom*bind*.* /s /p
Usually it is in
    %%USERPROFILE%%\AppData\local\Frontier Developments\Elite Dangerous\Options\Bindings`,
		filepath.Base(os.Args[0])),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVar(&configFile, "config", "", "YAML configuration file, flags given on the command line override it")
	bindFlags(flags, cfg)
}

// bindFlags binds every configuration option to a flag.
func bindFlags(flags *pflag.FlagSet, c *config.Config) {
	// Input options
	flags.StringVar((*string)(&c.Format), "format", string(c.Format), "Input format. Possible options: "+source.FormatHelp())
	flags.StringVar(&c.Input, "input", c.Input, "Input file (unless 'blank', 'debug' or 'demo' format is used)")

	// Output files
	flags.StringVar(&c.Outputs.Joystick, "joyout", c.Outputs.Joystick, "Joystick output file")
	flags.StringVar(&c.Outputs.Throttle, "throtout", c.Outputs.Throttle, "Throttle output file")
	flags.StringVar(&c.Outputs.Composite, "compout", c.Outputs.Composite, "Composite output file")

	// Template image files
	flags.StringVar(&c.Templates.Joystick, "joytemplate", c.Templates.Joystick, "Joystick template")
	flags.StringVar(&c.Templates.Throttle, "throttemplate", c.Templates.Throttle, "Throttle template")

	// Elite:Dangerous options
	flags.StringVar(&c.Elite.Devices.Joystick, "ed_tmw_stick", c.Elite.Devices.Joystick, "Elite Dangerous device name for Thrustmaster Warthog joystick")
	flags.StringVar(&c.Elite.Devices.Throttle, "ed_tmw_throttle", c.Elite.Devices.Throttle, "Elite Dangerous device name for Thrustmaster Warthog throttle/control panel")
	flags.StringVar(&c.Elite.Devices.Pedals, "ed_mfg_crosswind", c.Elite.Devices.Pedals, "Elite Dangerous device name for MFG Crosswind rudder pedals")
	flags.BoolVar(&c.Elite.Horizons, "ed_horizons", c.Elite.Horizons, "Include bindings for Elite Dangerous: Horizons (lander buggy)")

	// Cosmetic options
	flags.StringVar(&c.Cosmetic.Title, "title", c.Cosmetic.Title, "Title")
	flags.StringVar(&c.Cosmetic.Subtitle, "subtitle", c.Cosmetic.Subtitle, "Subtitle")
	flags.StringVar(&c.Cosmetic.ExtraText, "extra_text", c.Cosmetic.ExtraText, "Additional text")
	flags.Var(&c.Cosmetic.TitleColor, "rgbtitle", "RGB colours for title/subtitle/extra text")
	flags.Var(&c.Cosmetic.AnalogueColor, "rgbanalogue", "RGB colours for analogue devices")
	flags.Var(&c.Cosmetic.MomentaryColor, "rgbmomentary", "RGB colours for momentary switches (switches that deactivate when released)")
	flags.Var(&c.Cosmetic.StickyColor, "rgbsticky", "RGB colours for sticky switches (switches that keep their position when released)")
	flags.StringVar(&c.Cosmetic.Font, "ttf", c.Cosmetic.Font, "TrueType font file (default: embedded Go Bold)")
	flags.BoolVar(&c.Cosmetic.Wrap, "wrap", c.Cosmetic.Wrap, "Wrap text lines")
	flags.StringVar(&c.Cosmetic.WrapLineSep, "wrap_linesep", c.Cosmetic.WrapLineSep, "For wrapping, use this to separate multiple label lines")
	flags.Float64Var(&c.Cosmetic.Scale, "scale", c.Cosmetic.Scale, "Scale factor applied to every output image")

	// Debug options
	flags.BoolVar(&c.Debug.ShowMapping, "showmapping", c.Debug.ShowMapping, "Print mapping to stdout")
	flags.BoolVar(&c.Debug.ShowRects, "showrects", c.Debug.ShowRects, "Debugging option: show text rectangles")
	flags.BoolVarP(&c.Debug.Verbose, "verbose", "v", c.Debug.Verbose, "Verbose")
	flags.StringVar(&c.Debug.Profile, "profile", c.Debug.Profile, "Write a profile of the run to the working directory (cpu or mem)")
}

// applyConfigFile reads a configuration file over c, then re-applies every
// flag that was set on the command line.
func applyConfigFile(flags *pflag.FlagSet, c *config.Config, path string) error {
	changed := make(map[string]string)
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := c.ApplyFile(path); err != nil {
		return err
	}
	for name, v := range changed {
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid value for --%s: %w", name, err)
		}
	}
	return nil
}

// newLogger returns the logger used by the command.
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func run(cmd *cobra.Command, _ []string) error {
	if configFile != "" {
		if err := applyConfigFile(cmd.Flags(), cfg, configFile); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logger == nil {
		l, err := newLogger(cfg.Debug.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		defer func() {
			_ = logger.Sync()
		}()
	}

	switch cfg.Debug.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	logger.Info("Thrustmaster Warthog binding diagram generator")
	logger.Info("Templates courtesy of rayz007, http://forums.eagle.ru/showthread.php?t=102016")
	logger.Debug("configuration", zap.Any("config", cfg))

	return generate(cmd, cfg, logger)
}

// generate loads the mapping and draws every diagram.
func generate(cmd *cobra.Command, c *config.Config, log *zap.Logger) error {
	opts := c.SourceOptions()
	opts.Logger = log
	m, err := source.Load(opts)
	if err != nil {
		return err
	}
	if c.Debug.ShowMapping {
		if err := m.WriteJSON(cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	r := sheet.NewRenderer(c.SheetOptions(), log)
	defer r.Close()
	return r.Generate(c.Job(), m)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hotasmap:", err)
		os.Exit(1)
	}
}
