// SPDX-License-Identifier: Unlicense OR MIT

/*
Package justify lays out boxes in left to right rows, wrapping to a new
row when the next box would overflow the available width, and spreads
the width left over in each row as equal gaps before, between and after
the boxes of the row.

A layout cycle is two passes over the same ordered children. Measure is
the sizing pass: it measures every child and computes the container
size. Place is the placement pass: it regroups the measured children
into rows and assigns each child its rectangle. Both passes apply the
same row-break rule, so for the same width they agree on the rows.

The package does no unit conversion; all sizes are pixels. See package
unit for converting dp values.
*/
package justify

import "image"

// DefaultSpacing is the default horizontal and vertical spacing, in dp.
const DefaultSpacing = 20

const (
	// MatchParent requests a child as wide or tall as the container
	// allows.
	MatchParent = -1
	// WrapContent requests a child sized by its own content.
	WrapContent = -2
)

// Params are the size requests of a child. A non-negative Width
// or Height is a fixed size in pixels; MatchParent and WrapContent
// leave the dimension to the child, bounded by the container.
type Params struct {
	Width, Height int
}

// Child is a box laid out by a Layout. Children are owned by the
// caller; the layout only measures and places them.
type Child interface {
	// Params returns the size requested for the child.
	Params() Params
	// Measure measures the child against cs and returns its size.
	// The child must remember the size for Size.
	Measure(cs Constraints) image.Point
	// Size returns the size from the most recent Measure.
	Size() image.Point
	// Place positions the child in the container.
	Place(r image.Rectangle)
}

// Insets are the padding between the container edges and
// its content.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Layout arranges children in justified rows. Spacing and Padding
// are in pixels.
type Layout struct {
	// HorizontalSpacing is the minimum space reserved between children
	// of a row.
	HorizontalSpacing int
	// VerticalSpacing is the space between rows.
	VerticalSpacing int
	Padding         Insets
}

// Measurement is the result of a sizing pass.
type Measurement struct {
	// Size is the container size, padding included.
	Size image.Point
	// Width is the container width the rows were broken against,
	// padding included. Placing at Width reproduces Rows. It differs
	// from Size.X unless the width is Exactly.
	Width int
	// Rows are the rows found while measuring, with gaps computed
	// against the available width.
	Rows []Row
}

// Measure is the sizing pass. It measures every child in order and
// returns the size the container needs for constraints cs.
//
// Children without a fixed size are bounded by the container's
// available size, except that a child without a fixed height in a
// container of Unspecified height is measured with an Unspecified
// height.
//
// The reported width covers the widest row, the last row included,
// so a single row container measured AtMost reports its content
// width rather than zero.
func (l Layout) Measure(cs Constraints, children []Child) Measurement {
	avail := l.available(cs)
	var (
		total image.Point
		ln    line
		start int
		rows  []Row
	)
	for i, c := range children {
		sz := c.Measure(childConstraints(cs, avail, c.Params()))
		if ln.breaks(l.HorizontalSpacing, avail.X, sz.X) {
			rows = append(rows, ln.row(start, i, avail.X))
			total.X = max(total.X, ln.width)
			total.Y += ln.height + l.VerticalSpacing
			ln = line{width: sz.X, height: sz.Y}
			start = i
			continue
		}
		ln.excess = l.HorizontalSpacing
		ln.width += sz.X
		ln.height = max(ln.height, sz.Y)
	}
	if len(children) > 0 {
		rows = append(rows, ln.row(start, len(children), avail.X))
	}
	total.X = max(total.X, ln.width)
	total.Y += ln.height

	size := image.Point{
		X: total.X + l.Padding.Left + l.Padding.Right,
		Y: total.Y + l.Padding.Top + l.Padding.Bottom,
	}
	if cs.Width.Mode == Exactly {
		size.X = cs.Width.Size
	}
	if cs.Height.Mode == Exactly {
		size.Y = cs.Height.Size
	}
	return Measurement{Size: size, Width: cs.Width.Size, Rows: rows}
}

// Place is the placement pass. It regroups the measured children
// into rows for a container of the given width, places every child
// and returns the rows.
//
// Rows are broken and justified against width less the horizontal
// padding, and every row starts at Padding.Left. To place the rows
// found by Measure, pass Measurement.Width; an AtMost or Unspecified
// Size.X is narrower and may regroup the children.
func (l Layout) Place(width int, children []Child) []Row {
	sizes := make([]image.Point, len(children))
	for i, c := range children {
		sizes[i] = c.Size()
	}
	rows, rects := l.Arrange(width, sizes)
	for i, c := range children {
		c.Place(rects[i])
	}
	return rows
}

// Arrange computes the rows and child rectangles for children of
// the given sizes in a container of the given width. The rectangles
// are in input order. The first child of a row is at Padding.Left
// plus the row gap.
func (l Layout) Arrange(width int, sizes []image.Point) ([]Row, []image.Rectangle) {
	rows := l.Rows(l.budget(width), sizes)
	rects := make([]image.Rectangle, len(sizes))
	y := l.Padding.Top
	for _, r := range rows {
		x := l.Padding.Left + r.Gap
		for i := r.Start; i < r.End; i++ {
			sz := sizes[i]
			rects[i] = image.Rectangle{
				Min: image.Point{X: x, Y: y},
				Max: image.Point{X: x + sz.X, Y: y + sz.Y},
			}
			x += sz.X + r.Gap
		}
		y += r.Height + l.VerticalSpacing
	}
	return rows, rects
}

func (l Layout) available(cs Constraints) image.Point {
	return image.Point{
		X: max(cs.Width.Size-l.Padding.Left-l.Padding.Right, 0),
		Y: max(cs.Height.Size-l.Padding.Top-l.Padding.Bottom, 0),
	}
}

func (l Layout) budget(width int) int {
	return max(width-l.Padding.Left-l.Padding.Right, 0)
}

func childConstraints(cs Constraints, avail image.Point, p Params) Constraints {
	ccs := Constraints{
		Width:  AtMostSize(avail.X),
		Height: AtMostSize(avail.Y),
	}
	if p.Width >= 0 {
		ccs.Width = Exact(p.Width)
	}
	switch {
	case p.Height >= 0:
		ccs.Height = Exact(p.Height)
	case cs.Height.Mode == Unspecified:
		ccs.Height = Unbounded()
	}
	return ccs
}
