// SPDX-License-Identifier: Unlicense OR MIT

package justify

import "image"

// Box is a Child with a fixed content size. It is useful for hosts
// that know their children's sizes up front, such as text cells or
// prerendered images.
type Box struct {
	// Request is the requested size.
	Request Params
	// Intrinsic is the content size of the box.
	Intrinsic image.Point
	// Rect is the rectangle from the most recent placement.
	Rect image.Rectangle

	size image.Point
}

// NewBox returns a wrap-content Box of the given content size.
func NewBox(intrinsic image.Point) *Box {
	return &Box{
		Request:   Params{Width: WrapContent, Height: WrapContent},
		Intrinsic: intrinsic,
	}
}

// Boxes converts boxes to a slice of children.
func Boxes(boxes []*Box) []Child {
	children := make([]Child, len(boxes))
	for i, b := range boxes {
		children[i] = b
	}
	return children
}

// Params returns the requested size.
func (b *Box) Params() Params {
	return b.Request
}

// Measure resolves the content size against cs. A MatchParent
// dimension fills an AtMost bound.
func (b *Box) Measure(cs Constraints) image.Point {
	w, h := b.Intrinsic.X, b.Intrinsic.Y
	if b.Request.Width == MatchParent && cs.Width.Mode == AtMost {
		w = cs.Width.Size
	}
	if b.Request.Height == MatchParent && cs.Height.Mode == AtMost {
		h = cs.Height.Size
	}
	b.size = image.Point{X: cs.Width.Constrain(w), Y: cs.Height.Constrain(h)}
	return b.size
}

// Size returns the size from the most recent Measure.
func (b *Box) Size() image.Point {
	return b.size
}

// Place records r in Rect.
func (b *Box) Place(r image.Rectangle) {
	b.Rect = r
}
