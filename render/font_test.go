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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontCache_Face(t *testing.T) {
	c := NewFontCache()
	defer c.Close()

	a, err := c.Face("", 16)
	require.NoError(t, err)
	b, err := c.Face("", 16)
	require.NoError(t, err)
	assert.Same(t, a, b)

	big, err := c.Face("", 32)
	require.NoError(t, err)
	assert.Greater(t, LineHeight(big), LineHeight(a))
}

func TestFontCache_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	c := NewFontCache()
	defer c.Close()

	_, err := c.Face(path, 20)
	require.NoError(t, err)

	_, err = c.Face(filepath.Join(t.TempDir(), "missing.ttf"), 20)
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.ttf")
	require.NoError(t, os.WriteFile(junk, []byte("not a font"), 0o644))
	_, err = c.Face(junk, 20)
	assert.Error(t, err)
}
