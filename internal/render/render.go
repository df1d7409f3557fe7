// SPDX-License-Identifier: Unlicense OR MIT

// Package render draws justify layouts to images, for inspecting
// rows and gaps.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"justifylayout/justify"
)

// Scene is a laid out container.
type Scene struct {
	// Size is the container size.
	Size   image.Point
	Layout justify.Layout
	Rows   []justify.Row
	// Rects are the child rectangles, in child order.
	Rects []image.Rectangle
	// Labels are drawn centered in the child rectangles. Missing
	// or empty labels are skipped.
	Labels []string
}

// Options control the drawing.
type Options struct {
	// FontSize is the label size in pixels; 0 means 12.
	FontSize float64
}

var (
	background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	content    = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	band       = color.NRGBA{R: 0xdd, G: 0xe6, B: 0xf0, A: 0xff}
	outline    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	text       = color.NRGBA{A: 0xff}
)

// palette tints children by row.
var palette = []color.NRGBA{
	{R: 0x8e, G: 0xc5, B: 0xfc, A: 0xff},
	{R: 0xf8, G: 0xb1, B: 0x95, A: 0xff},
	{R: 0xa8, G: 0xe6, B: 0xcf, A: 0xff},
	{R: 0xff, G: 0xd3, B: 0xb6, A: 0xff},
}

// Draw renders s.
func Draw(s Scene, opts Options) (image.Image, error) {
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return nil, fmt.Errorf("render: empty container %v", s.Size)
	}
	if len(s.Rects) < countChildren(s.Rows) {
		return nil, fmt.Errorf("render: %d rectangles for %d children", len(s.Rects), countChildren(s.Rows))
	}
	face, err := labelFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(s.Size.X, s.Size.Y)
	dc.SetColor(background)
	dc.Clear()

	pad := s.Layout.Padding
	inner := image.Rect(pad.Left, pad.Top, s.Size.X-pad.Right, s.Size.Y-pad.Bottom)
	dc.SetColor(content)
	fillRect(dc, inner)

	dc.SetFontFace(face)
	y := pad.Top
	for ri, row := range s.Rows {
		dc.SetColor(band)
		fillRect(dc, image.Rect(inner.Min.X, y, inner.Max.X, y+row.Height))
		for i := row.Start; i < row.End; i++ {
			r := s.Rects[i]
			dc.SetColor(palette[ri%len(palette)])
			fillRect(dc, r)
			dc.SetColor(outline)
			dc.SetLineWidth(1)
			dc.DrawRectangle(float64(r.Min.X)+.5, float64(r.Min.Y)+.5, float64(r.Dx()-1), float64(r.Dy()-1))
			dc.Stroke()
			if i < len(s.Labels) && s.Labels[i] != "" {
				dc.SetColor(text)
				c := r.Min.Add(r.Max).Div(2)
				dc.DrawStringAnchored(s.Labels[i], float64(c.X), float64(c.Y), .5, .5)
			}
		}
		y += row.Height + s.Layout.VerticalSpacing
	}
	return dc.Image(), nil
}

// SavePNG renders s to a PNG file at path.
func SavePNG(path string, s Scene, opts Options) error {
	img, err := Draw(s, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func fillRect(dc *gg.Context, r image.Rectangle) {
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}

func countChildren(rows []justify.Row) int {
	n := 0
	for _, r := range rows {
		n = max(n, r.End)
	}
	return n
}

func labelFace(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: font face: %w", err)
	}
	return face, nil
}
