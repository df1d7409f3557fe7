// SPDX-License-Identifier: Unlicense OR MIT

package justify

// Mode describes how a Spec bounds a dimension.
type Mode uint8

const (
	// Unspecified leaves the dimension free; Spec.Size is a hint at most.
	Unspecified Mode = iota
	// AtMost bounds the dimension from above by Spec.Size.
	AtMost
	// Exactly fixes the dimension to Spec.Size.
	Exactly
)

// Spec is a measurement constraint for a single dimension.
type Spec struct {
	Mode Mode
	Size int
}

// Constraints is a pair of measurement constraints.
type Constraints struct {
	Width  Spec
	Height Spec
}

// Exact returns a Spec that fixes a dimension to size.
func Exact(size int) Spec {
	return Spec{Mode: Exactly, Size: size}
}

// AtMostSize returns a Spec bounding a dimension by size.
func AtMostSize(size int) Spec {
	return Spec{Mode: AtMost, Size: size}
}

// Unbounded returns an Unspecified Spec with a zero size hint.
func Unbounded() Spec {
	return Spec{Mode: Unspecified}
}

// Constrain resolves a desired size v against s: Exactly
// overrides v, AtMost caps it and Unspecified returns it unchanged.
func (s Spec) Constrain(v int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		if v > s.Size {
			return s.Size
		}
	}
	return v
}

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case AtMost:
		return "AtMost"
	case Exactly:
		return "Exactly"
	default:
		panic("unreachable")
	}
}
