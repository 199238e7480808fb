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
	"regexp"
	"strings"

	"golang.org/x/image/font"
)

// LineSpacing is the number of pixels between two lines of text.
const LineSpacing = 4

// Align is the horizontal alignment of the lines of a text block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// AlignFromHJust maps a justification to the nearest alignment, 0 is left,
// 0.5 is center and 1 is right.
func AlignFromHJust(hjust float64) Align {
	switch {
	case hjust <= 0.25:
		return AlignLeft
	case hjust >= 0.75:
		return AlignRight
	}
	return AlignCenter
}

// JustifyToPoint returns the starting coordinate (left or top) of an item of
// the given size aligned to point.
func JustifyToPoint(point, size, just float64) float64 {
	return point - size*just
}

// JustifyToBox returns the starting coordinate (left or top) of an item of
// the given size aligned within a box.
func JustifyToBox(start, boxSize, size, just float64) float64 {
	return start + (boxSize-size)*just
}

// LineHeight returns the height of a single line of text.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Measure returns the width and height of a block of text, lines are
// separated by "\n".
func Measure(text string, face font.Face) (int, int) {
	lines := strings.Split(text, "\n")
	var w int
	for _, l := range lines {
		if lw := font.MeasureString(face, l).Ceil(); lw > w {
			w = lw
		}
	}
	h := len(lines)*LineHeight(face) + (len(lines)-1)*LineSpacing
	return w, h
}

// whitespace matches a run of whitespace between two words.
var whitespace = regexp.MustCompile(`\s+`)

// WordWrap wraps text to a width in pixels using a proportional font. Every
// line of the input is wrapped separately. A word wider than the width is put
// on a line of its own. Whitespace between words on the same output line is
// kept as is, whitespace at a break is dropped.
func WordWrap(text string, width int, face font.Face) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		var cur, sep string
		pos := 0
		for _, loc := range append(whitespace.FindAllStringIndex(line, -1), []int{len(line), len(line)}) {
			word := line[pos:loc[0]]
			switch {
			case cur == "":
				cur = word
			case font.MeasureString(face, cur+sep+word).Ceil() > width:
				lines = append(lines, cur)
				cur = word
			default:
				cur += sep + word
			}
			sep, pos = line[loc[0]:loc[1]], loc[1]
		}
		lines = append(lines, cur)
	}

	res := lines[:0]
	for _, l := range lines {
		res = append(res, strings.TrimSpace(l))
	}
	if len(res) == 0 {
		return []string{""}
	}
	return res
}

// WrapText joins every line of text with spaces and wraps the result, the
// wrapped lines are joined with "\n".
func WrapText(text string, width int, face font.Face) string {
	text = strings.Join(strings.Split(text, "\n"), " ")
	return strings.Join(WordWrap(text, width, face), "\n")
}
