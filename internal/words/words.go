// SPDX-License-Identifier: Unlicense OR MIT

// Package words justifies text for fixed width terminals. Every word is
// a box one cell tall and as wide as its display width, laid out by
// package justify.
package words

import (
	"image"
	"strings"
	"unicode"

	segment "github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"

	"justifylayout/justify"
)

// Word is a run of text that is never broken across lines.
type Word struct {
	Text string
	// Width is the display width in cells.
	Width int
}

// Split segments text into words by the Unicode word boundary rules.
// Whitespace separates words; punctuation attaches to the word it
// touches.
func Split(text string) []Word {
	var (
		ws    []Word
		space = true
	)
	tokens := segment.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimFunc(tok, unicode.IsSpace) == "" {
			space = true
			continue
		}
		if !space && len(ws) > 0 {
			last := &ws[len(ws)-1]
			last.Text += tok
			last.Width += runewidth.StringWidth(tok)
			continue
		}
		ws = append(ws, Word{Text: tok, Width: runewidth.StringWidth(tok)})
		space = false
	}
	return ws
}

// Options control Justify.
type Options struct {
	// Columns is the line width in cells.
	Columns int
	// Spacing is the minimum number of cells between words.
	Spacing int
	// LineSpacing is the number of blank lines between lines.
	LineSpacing int
}

// Justify lays out ws in lines of opts.Columns cells, spreading the
// unused cells of each line evenly around its words. Words wider than
// a line get a line of their own and overflow it.
func Justify(ws []Word, opts Options) []string {
	l := justify.Layout{
		HorizontalSpacing: opts.Spacing,
		VerticalSpacing:   opts.LineSpacing,
	}
	boxes := make([]*justify.Box, len(ws))
	for i, w := range ws {
		boxes[i] = justify.NewBox(image.Point{X: w.Width, Y: 1})
	}
	children := justify.Boxes(boxes)
	cs := justify.Constraints{
		Width:  justify.Exact(opts.Columns),
		Height: justify.Unbounded(),
	}
	m := l.Measure(cs, children)
	rows := l.Place(m.Width, children)

	var lines []string
	for _, row := range rows {
		if row.Len() == 0 {
			continue
		}
		if len(lines) > 0 {
			for i := 0; i < opts.LineSpacing; i++ {
				lines = append(lines, "")
			}
		}
		var b strings.Builder
		col := 0
		for i := row.Start; i < row.End; i++ {
			if x := boxes[i].Rect.Min.X; x > col {
				b.WriteString(strings.Repeat(" ", x-col))
				col = x
			}
			b.WriteString(ws[i].Text)
			col += ws[i].Width
		}
		lines = append(lines, b.String())
	}
	return lines
}
