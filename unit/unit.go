// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Scaled pixels, or sp, is the unit for
text sizes; an sp is like dp with text scaling applied.

Pixels, or px, are display dependent. Layout arithmetic in package
justify happens in pixels only; convert once, at the edge, with a
Metric or with DpToPx.
*/
package unit

import (
	"fmt"
	"math"
)

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Sp is like Dp but for font sizes.
type Sp float32

// Metric converts Dp and Sp to device pixels. The zero value
// converts 1:1.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

// DpToPx converts v to pixels at the given density scale, rounding
// half up. A zero scale is treated as 1.
func DpToPx(v Dp, scale float32) int {
	return round(float32(v) * nonZero(scale))
}

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return DpToPx(v, c.PxPerDp)
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return round(float32(v) * nonZero(c.PxPerSp))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(c.PxPerDp))
}

// PxToSp converts v px to sp.
func (c Metric) PxToSp(v int) Sp {
	return Sp(float32(v) / nonZero(c.PxPerSp))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

// round rounds v half away from zero, saturating at the int32 range.
func round(v float32) int {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	case v < 0:
		return -int(-v + .5)
	default:
		return int(v + .5)
	}
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
