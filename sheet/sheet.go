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

// Package sheet draws the descriptions of a Mapping onto device templates.
package sheet

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/matthewpi/hotasmap"
	"github.com/matthewpi/hotasmap/render"
)

// Palette holds the colors used to draw labels.
type Palette struct {
	Analogue  hotasmap.RGB
	Momentary hotasmap.RGB
	Sticky    hotasmap.RGB
	Title     hotasmap.RGB
}

// DefaultPalette returns the default Palette.
func DefaultPalette() Palette {
	return Palette{
		Analogue:  hotasmap.RGB{R: 255, G: 0, B: 255},
		Momentary: hotasmap.RGB{R: 255, G: 0, B: 0},
		Sticky:    hotasmap.RGB{R: 0, G: 0, B: 255},
		Title:     hotasmap.RGB{R: 0, G: 100, B: 0},
	}
}

// ForType returns the color used for a type of control, controls of an
// unknown type are drawn as momentary switches.
func (p Palette) ForType(t hotasmap.ControlType) hotasmap.RGB {
	switch t {
	case hotasmap.Analogue:
		return p.Analogue
	case hotasmap.Sticky:
		return p.Sticky
	}
	return p.Momentary
}

// Options configure a Renderer.
type Options struct {
	// Font is the path of the font file, empty uses the embedded font.
	Font string
	// Wrap word-wraps descriptions, their lines are joined by WrapLineSep.
	Wrap        bool
	WrapLineSep string
	// ShowRects draws the text boxes, for debugging layouts.
	ShowRects bool
	// Scale resizes every output image, 0 and 1 leave them untouched.
	Scale float64

	Palette Palette
}

// Sheet is a single diagram to draw.
type Sheet struct {
	// Template is the path of the template image.
	Template string
	// Output is the path the diagram is saved to.
	Output string

	// Descriptions of the controls to draw.
	Descriptions hotasmap.Descriptions
	// Placements of the controls, descriptions of controls without a placement
	// are ignored.
	Placements map[string]hotasmap.Control
	// Labels are drawn after the descriptions.
	Labels []hotasmap.Label
}

// Renderer draws Sheets.
type Renderer struct {
	opts  Options
	fonts *render.FontCache
	log   *zap.Logger
}

// NewRenderer returns a new Renderer. A nil logger disables logging.
func NewRenderer(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		opts:  opts,
		fonts: render.NewFontCache(),
		log:   log,
	}
}

// Close releases the fonts used by the Renderer.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}

// Draw draws a Sheet onto its template and returns the (scaled) result.
func (r *Renderer) Draw(s Sheet) (image.Image, error) {
	r.log.Info("opening template", zap.String("template", s.Template))
	img, err := hotasmap.OpenImage(s.Template)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	r.log.Debug("template size", zap.Stringer("size", img.Bounds().Size()))

	c := render.NewCanvas(img, r.fonts, r.log)

	// Draw in a stable order, boxes of neighbouring controls may overlap.
	names := make([]string, 0, len(s.Descriptions))
	for name := range s.Descriptions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ctrl, ok := s.Placements[name]
		if !ok {
			continue
		}
		if err := c.BoxedText(r.join(s.Descriptions[name]), ctrl.Box(), r.opts.Palette.ForType(ctrl.Type), render.BoxOptions{
			Font:     r.opts.Font,
			HJust:    ctrl.HJust,
			VJust:    ctrl.VJust,
			Wrap:     r.opts.Wrap,
			ShowRect: r.opts.ShowRects,
		}); err != nil {
			return nil, fmt.Errorf("sheet: failed to draw %q: %w", name, err)
		}
	}
	for _, l := range s.Labels {
		if err := c.Label(l, r.opts.Font); err != nil {
			return nil, fmt.Errorf("sheet: failed to draw label %q: %w", l.Text, err)
		}
	}

	return hotasmap.Resize(img, r.opts.Scale), nil
}

// Render draws a Sheet and saves it to its output path.
func (r *Renderer) Render(s Sheet) (image.Image, error) {
	img, err := r.Draw(s)
	if err != nil {
		return nil, err
	}
	r.log.Info("saving diagram", zap.String("output", s.Output))
	if err := hotasmap.SaveImage(s.Output, img); err != nil {
		return nil, fmt.Errorf("sheet: failed to save %q: %w", s.Output, err)
	}
	return img, nil
}

// join joins the lines of a description.
func (r *Renderer) join(lines []string) string {
	if r.opts.Wrap {
		return strings.Join(lines, r.opts.WrapLineSep)
	}
	return strings.Join(lines, "\n")
}
