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

// Package render draws fitted text onto images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matthewpi/hotasmap"
)

const (
	// BaseFontSize is the font size box fitting starts from.
	BaseFontSize = 16
	// MinFontSize is the smallest font size box fitting will use.
	MinFontSize = 1
	// DefaultStepUp is how far box fitting jumps after a size that fits.
	DefaultStepUp = 5
)

var (
	// RectOutline is the outline color of debugging rectangles.
	RectOutline = color.RGBA{A: 0xff}
	// RectFill is the fill color of debugging rectangles.
	RectFill = color.RGBA{R: 240, G: 240, B: 240, A: 0xff}
)

// BoxOptions control how BoxedText lays out text.
type BoxOptions struct {
	// Font is the path of the font file, empty uses the embedded font.
	Font string
	// HJust and VJust position the text within the box.
	HJust, VJust float64
	// Wrap word-wraps the text to the width of the box and picks the largest
	// font size that fits, otherwise the text is scaled to fit as is.
	Wrap bool
	// ShowRect draws the box behind the text.
	ShowRect bool
	// StepUp is the number of sizes to jump after a size that fits while
	// wrapping, it defaults to DefaultStepUp.
	StepUp int
}

// Canvas draws text onto an image.
type Canvas struct {
	img   draw.Image
	fonts *FontCache
	log   *zap.Logger
}

// NewCanvas returns a Canvas drawing onto img. A nil logger disables logging.
func NewCanvas(img draw.Image, fonts *FontCache, log *zap.Logger) *Canvas {
	if fonts == nil {
		fonts = NewFontCache()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Canvas{
		img:   img,
		fonts: fonts,
		log:   log,
	}
}

// Image returns the image being drawn on.
func (c *Canvas) Image() draw.Image {
	return c.img
}

// BoxedText draws text within a box, the font size is picked so the text
// fills as much of the box as possible. Empty text draws nothing at all.
func (c *Canvas) BoxedText(text string, box image.Rectangle, col color.Color, opts BoxOptions) error {
	c.log.Debug("adding boxed text", zap.String("text", text), zap.Stringer("box", box))
	if text == "" {
		return nil
	}

	face, text, size, err := c.fit(text, box, opts)
	if err != nil {
		return err
	}
	w, h := Measure(text, face)
	c.log.Debug("final font size", zap.Float64("size", size), zap.Int("width", w), zap.Int("height", h))

	if opts.ShowRect {
		c.Rect(box, RectOutline, RectFill)
	}

	x := JustifyToBox(float64(box.Min.X), float64(box.Dx()), float64(w), opts.HJust)
	y := JustifyToBox(float64(box.Min.Y), float64(box.Dy()), float64(h), opts.VJust)
	c.drawText(text, x, y, face, col, AlignFromHJust(opts.HJust))
	return nil
}

// fit returns the face and (possibly wrapped) text used to fill a box.
func (c *Canvas) fit(text string, box image.Rectangle, opts BoxOptions) (font.Face, string, float64, error) {
	boxW, boxH := box.Dx(), box.Dy()

	if !opts.Wrap {
		face, err := c.fonts.Face(opts.Font, BaseFontSize)
		if err != nil {
			return nil, "", 0, err
		}

		// Scale the font proportionally to whichever of the text's width or
		// height is the limiting dimension of the box.
		w, h := Measure(text, face)
		size := BaseFontSize
		switch {
		case w > 0 && float64(w)/float64(boxW) > float64(h)/float64(boxH):
			size = BaseFontSize * boxW / w
		case h > 0:
			size = BaseFontSize * boxH / h
		}
		if size < MinFontSize {
			size = MinFontSize
		}
		face, err = c.fonts.Face(opts.Font, float64(size))
		if err != nil {
			return nil, "", 0, err
		}
		return face, text, float64(size), nil
	}

	step := opts.StepUp
	if step < 1 {
		step = DefaultStepUp
	}

	// Starting from the base size, go down by one after a size that overflows
	// the box and up by step after a size that fits. Stop once a size that is
	// known to fit comes up again.
	fitted := make(map[int]string)
	failed := make(map[int]bool)
	size := BaseFontSize
	for {
		if _, ok := fitted[size]; ok {
			break
		}
		if failed[size] {
			size--
			continue
		}

		face, err := c.fonts.Face(opts.Font, float64(size))
		if err != nil {
			return nil, "", 0, err
		}
		wrapped := WrapText(text, boxW, face)
		w, h := Measure(wrapped, face)
		if (w > boxW || h > boxH) && size > MinFontSize {
			failed[size] = true
			size--
			continue
		}
		fitted[size] = wrapped
		size += step
	}
	c.log.Debug("wrapped final font size", zap.Int("size", size))

	face, err := c.fonts.Face(opts.Font, float64(size))
	if err != nil {
		return nil, "", 0, err
	}
	return face, fitted[size], float64(size), nil
}

// Label draws a free-standing label, it is positioned relative to its point
// using its justification.
func (c *Canvas) Label(l hotasmap.Label, fontPath string) error {
	face, err := c.fonts.Face(fontPath, l.FontSize)
	if err != nil {
		return err
	}
	w, h := Measure(l.Text, face)
	x := JustifyToPoint(l.X, float64(w), l.HJust)
	y := JustifyToPoint(l.Y, float64(h), l.VJust)
	c.drawText(l.Text, x, y, face, l.Color, AlignFromHJust(l.HJust))
	return nil
}

// Rect draws a filled rectangle with a one pixel outline, the rectangle
// includes its right and bottom edges.
func (c *Canvas) Rect(r image.Rectangle, outline, fill color.Color) {
	r = image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
	draw.Draw(c.img, r, image.NewUniform(outline), image.Point{}, draw.Src)
	if r.Dx() > 2 && r.Dy() > 2 {
		draw.Draw(c.img, r.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)
	}
}

// drawText draws a block of text with its top-left corner at (x, y), lines
// are aligned relative to the widest line.
func (c *Canvas) drawText(text string, x, y float64, face font.Face, col color.Color, align Align) {
	lines := strings.Split(text, "\n")
	blockW, _ := Measure(text, face)
	ascent := face.Metrics().Ascent
	lineStep := LineHeight(face) + LineSpacing

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range lines {
		lineW := d.MeasureString(line).Ceil()
		var dx int
		switch align {
		case AlignCenter:
			dx = (blockW - lineW) / 2
		case AlignRight:
			dx = blockW - lineW
		}
		d.Dot = fixed.Point26_6{
			X: floatToFixed(x) + fixed.I(dx),
			Y: floatToFixed(y) + fixed.I(i*lineStep) + ascent,
		}
		d.DrawString(line)
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
