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

package sheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/matthewpi/hotasmap"
	"github.com/matthewpi/hotasmap/render"
)

// Titles are optional texts drawn on the joystick diagram.
type Titles struct {
	Title     string
	Subtitle  string
	ExtraText string
}

// Title label positions and sizes.
const (
	titleLeft    = 50
	titleTop     = 50
	titleSize    = 40
	subtitleSize = 30

	extraTextLeft = 975
	extraTextTop  = 1000
	extraTextSize = 30
)

// Labels returns the labels for every non-empty title.
func (t Titles) Labels(col hotasmap.RGB) []hotasmap.Label {
	var labels []hotasmap.Label
	if t.Title != "" {
		labels = append(labels, hotasmap.Label{
			Text:     t.Title,
			X:        titleLeft,
			Y:        titleTop,
			FontSize: titleSize,
			Color:    col,
		})
	}
	if t.Subtitle != "" {
		labels = append(labels, hotasmap.Label{
			Text:     t.Subtitle,
			X:        titleLeft,
			Y:        titleTop + 50,
			FontSize: subtitleSize,
			Color:    col,
		})
	}
	if t.ExtraText != "" {
		labels = append(labels, hotasmap.Label{
			Text:     t.ExtraText,
			X:        extraTextLeft,
			Y:        extraTextTop,
			FontSize: extraTextSize,
			Color:    col,
		})
	}
	return labels
}

// Job describes a full set of diagrams to generate.
type Job struct {
	JoystickTemplate string
	ThrottleTemplate string

	JoystickOutput  string
	ThrottleOutput  string
	CompositeOutput string

	Titles Titles
}

// Generate draws the joystick diagram (with the rudder pedals) and the
// throttle diagram, then joins them side by side with the throttle on the
// left.
func (r *Renderer) Generate(j Job, m hotasmap.Mapping) error {
	var labels []hotasmap.Label
	labels = append(labels, hotasmap.Pedals.Labels...)
	labels = append(labels, hotasmap.Joystick.Labels...)
	labels = append(labels, j.Titles.Labels(r.opts.Palette.Title)...)

	joystick, err := r.Render(Sheet{
		Template:     j.JoystickTemplate,
		Output:       j.JoystickOutput,
		Descriptions: hotasmap.Merge(m[hotasmap.JoystickName], m[hotasmap.PedalsName]),
		Placements:   hotasmap.MergePlacements(hotasmap.Joystick.Placements(), hotasmap.Pedals.Placements()),
		Labels:       labels,
	})
	if err != nil {
		return err
	}

	throttle, err := r.Render(Sheet{
		Template:     j.ThrottleTemplate,
		Output:       j.ThrottleOutput,
		Descriptions: m[hotasmap.ThrottleName],
		Placements:   hotasmap.Throttle.Placements(),
		Labels:       hotasmap.Throttle.Labels,
	})
	if err != nil {
		return err
	}

	r.log.Info("compositing",
		zap.Strings("inputs", []string{j.ThrottleOutput, j.JoystickOutput}),
		zap.String("output", j.CompositeOutput),
	)
	joined := render.SideBySide(throttle, joystick)
	r.log.Debug("composite size", zap.Int("width", joined.Bounds().Dx()), zap.Int("height", joined.Bounds().Dy()))
	if err := hotasmap.SaveImage(j.CompositeOutput, joined); err != nil {
		return fmt.Errorf("sheet: failed to save %q: %w", j.CompositeOutput, err)
	}
	return nil
}
