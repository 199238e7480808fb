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

package render

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DPI used when rasterising fonts, at 72 DPI a font size is in pixels.
const DPI = 72

type faceKey struct {
	path string
	size float64
}

// FontCache loads fonts and caches a font.Face for every size requested.
//
// An empty path selects the embedded Go Bold font.
type FontCache struct {
	mx    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFontCache returns an empty FontCache.
func NewFontCache() *FontCache {
	return &FontCache{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Face returns the face of a font at the given size in pixels.
func (c *FontCache) Face(path string, size float64) (font.Face, error) {
	c.mx.Lock()
	defer c.mx.Unlock()

	k := faceKey{path: path, size: size}
	if f, ok := c.faces[k]; ok {
		return f, nil
	}

	f, err := c.font(path)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: failed to create face for %q at size %v: %w", path, size, err)
	}
	c.faces[k] = face
	return face, nil
}

// font returns the parsed font at path, the caller must hold c.mx.
func (c *FontCache) font(path string) (*opentype.Font, error) {
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}

	var (
		raw []byte
		err error
	)
	if path == "" {
		raw = gobold.TTF
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("render: failed to load font: %w", err)
		}
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font %q: %w", path, err)
	}
	c.fonts[path] = f
	return f, nil
}

// Close releases every cached face.
func (c *FontCache) Close() error {
	c.mx.Lock()
	defer c.mx.Unlock()

	var firstErr error
	for k, f := range c.faces {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.faces, k)
	}
	return firstErr
}
