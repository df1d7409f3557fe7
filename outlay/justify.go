// SPDX-License-Identifier: Unlicense OR MIT

// Package outlay adapts the justify layout to Gio.
package outlay

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"justifylayout/justify"
)

// inf stands in for an unbounded constraint, as in layout.List.
const inf = 1e6

const (
	// Wrap sizes a JustifyChild dimension by its content.
	Wrap unit.Dp = -1
	// Match sizes a JustifyChild dimension to the space available
	// in the container.
	Match unit.Dp = -2
)

// Justify lays out children in rows, wrapping when a row is full, and
// spreads the width left over in a row as equal gaps around its
// children.
//
// Justify always fills the maximum width of its constraints. Its
// height is exact for rigid height constraints, otherwise the height
// of its rows.
type Justify struct {
	// HorizontalSpacing is the minimum space between children of
	// a row.
	HorizontalSpacing unit.Dp
	// VerticalSpacing is the space between rows.
	VerticalSpacing unit.Dp
	Padding         layout.Inset
}

// JustifyChild is the descriptor for a Justify child.
type JustifyChild struct {
	width, height unit.Dp
	widget        layout.Widget

	// Scratch space.
	gtx  layout.Context
	call op.CallOp
	dims layout.Dimensions
	rect image.Rectangle
}

// Item returns a Justify child sized by its content, bounded by the
// space available in the container.
func Item(w layout.Widget) JustifyChild {
	return JustifyChild{
		width:  Wrap,
		height: Wrap,
		widget: w,
	}
}

// Sized returns a Justify child of a fixed size. A Wrap dimension is
// sized by the content, a Match dimension fills the container.
func Sized(width, height unit.Dp, w layout.Widget) JustifyChild {
	return JustifyChild{
		width:  width,
		height: height,
		widget: w,
	}
}

// Layout a list of children.
func (j Justify) Layout(gtx layout.Context, children ...JustifyChild) layout.Dimensions {
	l := justify.Layout{
		HorizontalSpacing: gtx.Dp(j.HorizontalSpacing),
		VerticalSpacing:   gtx.Dp(j.VerticalSpacing),
		Padding: justify.Insets{
			Top:    gtx.Dp(j.Padding.Top),
			Right:  gtx.Dp(j.Padding.Right),
			Bottom: gtx.Dp(j.Padding.Bottom),
			Left:   gtx.Dp(j.Padding.Left),
		},
	}
	cs := gtx.Constraints
	jcs := justify.Constraints{
		Width:  justify.Exact(cs.Max.X),
		Height: heightSpec(cs),
	}
	hosted := make([]justify.Child, len(children))
	for i := range children {
		children[i].gtx = gtx
		hosted[i] = &children[i]
	}
	m := l.Measure(jcs, hosted)
	l.Place(m.Width, hosted)
	for i := range children {
		children[i].gtx = layout.Context{}
	}
	return layout.Dimensions{Size: cs.Constrain(m.Size)}
}

// Params converts the requested size to pixels.
func (c *JustifyChild) Params() justify.Params {
	return justify.Params{
		Width:  c.px(c.width),
		Height: c.px(c.height),
	}
}

func (c *JustifyChild) px(v unit.Dp) int {
	switch {
	case v == Match:
		return justify.MatchParent
	case v < 0:
		return justify.WrapContent
	default:
		return c.gtx.Dp(v)
	}
}

// Measure records the child's operations for replay by Place.
func (c *JustifyChild) Measure(cs justify.Constraints) image.Point {
	gtx := c.gtx
	gtx.Constraints = toConstraints(cs)
	if c.width == Match && gtx.Constraints.Max.X < inf {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
	}
	if c.height == Match && gtx.Constraints.Max.Y < inf {
		gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
	}
	macro := op.Record(gtx.Ops)
	dims := c.widget(gtx)
	c.call = macro.Stop()
	dims.Size = gtx.Constraints.Constrain(dims.Size)
	c.dims = dims
	return dims.Size
}

// Size returns the measured size.
func (c *JustifyChild) Size() image.Point {
	return c.dims.Size
}

// Place replays the recorded operations offset to r.Min.
func (c *JustifyChild) Place(r image.Rectangle) {
	c.rect = r
	stack := op.Offset(r.Min).Push(c.gtx.Ops)
	c.call.Add(c.gtx.Ops)
	stack.Pop()
}

func heightSpec(cs layout.Constraints) justify.Spec {
	switch {
	case cs.Min.Y == cs.Max.Y:
		return justify.Exact(cs.Max.Y)
	case cs.Max.Y >= inf:
		return justify.Unbounded()
	default:
		return justify.AtMostSize(cs.Max.Y)
	}
}

func toConstraints(cs justify.Constraints) layout.Constraints {
	var c layout.Constraints
	c.Min.X, c.Max.X = toRange(cs.Width)
	c.Min.Y, c.Max.Y = toRange(cs.Height)
	return c
}

func toRange(s justify.Spec) (int, int) {
	switch s.Mode {
	case justify.Exactly:
		return s.Size, s.Size
	case justify.AtMost:
		return 0, s.Size
	default:
		return 0, inf
	}
}
