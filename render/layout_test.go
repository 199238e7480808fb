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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func testFace(t *testing.T, size float64) font.Face {
	t.Helper()
	face, err := NewFontCache().Face("", size)
	require.NoError(t, err)
	return face
}

func TestAlignFromHJust(t *testing.T) {
	for hjust, expected := range map[float64]Align{
		0:    AlignLeft,
		0.25: AlignLeft,
		0.3:  AlignCenter,
		0.5:  AlignCenter,
		0.7:  AlignCenter,
		0.75: AlignRight,
		1:    AlignRight,
	} {
		assert.Equal(t, expected, AlignFromHJust(hjust), "hjust %v", hjust)
	}
}

func TestJustify(t *testing.T) {
	assert.Equal(t, 100.0, JustifyToPoint(100, 40, 0))
	assert.Equal(t, 80.0, JustifyToPoint(100, 40, 0.5))
	assert.Equal(t, 60.0, JustifyToPoint(100, 40, 1))

	assert.Equal(t, 10.0, JustifyToBox(10, 100, 40, 0))
	assert.Equal(t, 40.0, JustifyToBox(10, 100, 40, 0.5))
	assert.Equal(t, 70.0, JustifyToBox(10, 100, 40, 1))
}

func TestMeasure(t *testing.T) {
	face := testFace(t, 16)
	lh := LineHeight(face)
	require.Greater(t, lh, 0)

	w, h := Measure("Fire 1", face)
	assert.Equal(t, font.MeasureString(face, "Fire 1").Ceil(), w)
	assert.Equal(t, lh, h)

	w2, h := Measure("Fire 1\nFire 2 (long)", face)
	assert.Greater(t, w2, w)
	assert.Equal(t, 2*lh+LineSpacing, h)

	w, h = Measure("", face)
	assert.Equal(t, 0, w)
	assert.Equal(t, lh, h)
}

func TestWordWrap(t *testing.T) {
	face := testFace(t, 16)
	width := font.MeasureString(face, "alpha beta").Ceil()

	assert.Equal(t, []string{"alpha beta", "gamma"}, WordWrap("alpha beta gamma", width, face))
	assert.Equal(t, []string{"alpha   beta gamma"}, WordWrap("  alpha   beta gamma  ", 1000, face))
	assert.Equal(t, []string{"a  b"}, WordWrap("a  b", 1000, face))
	assert.Equal(t, []string{"alpha", "beta"}, WordWrap("alpha \t beta", width, face))
	assert.Equal(t, []string{"alpha", "beta"}, WordWrap("alpha beta", width-1, face))
	assert.Equal(t, []string{"supercalifragilistic", "a"}, WordWrap("supercalifragilistic a", 10, face))
	assert.Equal(t, []string{"a", "", "b"}, WordWrap("a\n\nb", 1000, face))
	assert.Equal(t, []string{""}, WordWrap("", 1000, face))
}

func TestWrapText(t *testing.T) {
	face := testFace(t, 16)
	width := font.MeasureString(face, "alpha beta").Ceil()

	assert.Equal(t, "a b", WrapText("a\nb", 1000, face))
	assert.Equal(t, "alpha beta\ngamma", WrapText("alpha\nbeta gamma", width, face))
}
