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
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// ImageFormat represents the format an output image is encoded with.
type ImageFormat string

const (
	// BMP is a BMP ImageFormat.
	BMP ImageFormat = "BMP"
	// JPEG is a JPEG ImageFormat.
	JPEG ImageFormat = "JPEG"
	// PNG is a PNG ImageFormat.
	PNG ImageFormat = "PNG"
)

// imageFormatExts maps lower-case file extensions to their ImageFormat.
var imageFormatExts = map[string]ImageFormat{
	".bmp":  BMP,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".png":  PNG,
}

// FormatFromPath returns the ImageFormat matching the extension of a file.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := imageFormatExts[ext]
	if !ok {
		return "", fmt.Errorf("hotasmap: unsupported image extension %q", ext)
	}
	return f, nil
}

// Encode encodes an image using a ImageFormat.
func (f ImageFormat) Encode(w io.Writer, img image.Image) error {
	switch f {
	case BMP:
		return bmp.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case PNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("hotasmap: unsupported image format %q", string(f))
}

// OpenImage opens a template image and returns a copy that can be drawn on.
func OpenImage(path string) (*image.RGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hotasmap: failed to open image %q: %w", path, err)
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img, nil
}

// SaveImage encodes an image to a file, the format is picked using the file
// extension. Missing parent directories are created.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(file, img); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Resize scales an image by a factor using Lanczos resampling. A factor of 1
// returns the image untouched.
func Resize(img image.Image, scale float64) image.Image {
	if scale == 1 || scale <= 0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g := gift.New(gift.Resize(w, h, gift.LanczosResampling))
	res := image.NewRGBA(g.Bounds(b))
	g.Draw(res, img)
	return res
}
