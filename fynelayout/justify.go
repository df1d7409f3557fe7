// SPDX-License-Identifier: Unlicense OR MIT

// Package fynelayout adapts the justify layout to Fyne containers.
package fynelayout

import (
	"image"
	"math"

	"fyne.io/fyne/v2"

	"justifylayout/justify"
)

// Declare conformity with Layout interface
var _ fyne.Layout = (*justifyLayout)(nil)

type justifyLayout struct {
	l justify.Layout
	// width is the width of the most recent Layout, for MinSize.
	width int
}

// NewJustifyLayout returns a layout that arranges objects in justified
// rows, with at least horizontal space between objects of a row and
// vertical space between rows.
//
// Sizes are rounded up to whole Fyne units.
func NewJustifyLayout(horizontal, vertical float32) fyne.Layout {
	return &justifyLayout{
		l: justify.Layout{
			HorizontalSpacing: units(horizontal),
			VerticalSpacing:   units(vertical),
		},
	}
}

// Layout is called to pack all child objects into a specified size.
// Hidden objects are skipped.
func (j *justifyLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	children := visible(objects)
	j.width = units(size.Width)
	cs := justify.Constraints{
		Width:  justify.Exact(j.width),
		Height: justify.Exact(units(size.Height)),
	}
	m := j.l.Measure(cs, children)
	j.l.Place(m.Width, children)
}

// MinSize is wide enough for the widest object to fit a row of its
// own, and as tall as the rows at the most recent layout width.
func (j *justifyLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	children := visible(objects)
	minWidth := 0
	for _, c := range children {
		minWidth = max(minWidth, c.(*child).min().X)
	}
	if len(children) > 0 {
		minWidth += 2 * j.l.HorizontalSpacing
	}
	cs := justify.Constraints{
		Width:  justify.Exact(max(j.width, minWidth)),
		Height: justify.Unbounded(),
	}
	m := j.l.Measure(cs, children)
	return fyne.NewSize(float32(minWidth), float32(m.Size.Y))
}

type child struct {
	obj  fyne.CanvasObject
	size image.Point
}

func visible(objects []fyne.CanvasObject) []justify.Child {
	var children []justify.Child
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		children = append(children, &child{obj: o})
	}
	return children
}

func (c *child) Params() justify.Params {
	return justify.Params{Width: justify.WrapContent, Height: justify.WrapContent}
}

func (c *child) min() image.Point {
	s := c.obj.MinSize()
	return image.Point{X: units(s.Width), Y: units(s.Height)}
}

func (c *child) Measure(cs justify.Constraints) image.Point {
	m := c.min()
	c.size = image.Point{X: cs.Width.Constrain(m.X), Y: cs.Height.Constrain(m.Y)}
	return c.size
}

func (c *child) Size() image.Point {
	return c.size
}

func (c *child) Place(r image.Rectangle) {
	c.obj.Move(fyne.NewPos(float32(r.Min.X), float32(r.Min.Y)))
	c.obj.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
}

func units(v float32) int {
	return int(math.Ceil(float64(v)))
}
