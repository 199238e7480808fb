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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	for path, expected := range map[string]ImageFormat{
		"out.png":        PNG,
		"out/OUT.PNG":    PNG,
		"composite.jpg":  JPEG,
		"composite.jpeg": JPEG,
		"/tmp/joy.bmp":   BMP,
	} {
		f, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, f, path)
	}

	_, err := FormatFromPath("out.tiff")
	assert.Error(t, err)
	_, err = FormatFromPath("out")
	assert.Error(t, err)
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	dir := t.TempDir()
	for _, name := range []string{"a/b/out.png", "out.jpg", "out.bmp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveImage(path, img), name)

		opened, err := OpenImage(path)
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 4, 3), opened.Bounds(), name)
	}

	assert.Error(t, SaveImage(filepath.Join(dir, "out.gif"), img))
}

func TestOpenImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.png")
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 1, color.NRGBA{G: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(0, 1))

	_, err = OpenImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Same(t, image.Image(img), Resize(img, 1))

	res := Resize(img, 0.5)
	assert.Equal(t, 50, res.Bounds().Dx())
	assert.Equal(t, 25, res.Bounds().Dy())

	res = Resize(img, 2)
	assert.Equal(t, 200, res.Bounds().Dx())
	assert.Equal(t, 100, res.Bounds().Dy())
}
