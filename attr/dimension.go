// SPDX-License-Identifier: Unlicense OR MIT

package attr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"justifylayout/justify"
	"justifylayout/unit"
)

var (
	// ErrUnit is returned for a dimension with an unknown unit suffix.
	ErrUnit = errors.New("unknown unit")
	// ErrNegative is returned for a negative dimension.
	ErrNegative = errors.New("negative dimension")
	// ErrMode is returned for an unknown measurement mode.
	ErrMode = errors.New("unknown mode")
	// ErrRange is returned for a dimension or scale too large to lay
	// out.
	ErrRange = errors.New("out of range")
)

// MaxDimension is the largest dimension value accepted, in any unit.
const MaxDimension = 1 << 20

// Unit is the unit of a Dimension.
type Unit uint8

const (
	// Px is device pixels.
	Px Unit = iota
	// Dp is device independent pixels.
	Dp
	// Sp is scaled pixels, for text.
	Sp
)

// Dimension is a length with a unit, written "20dp", "14sp" or
// "12px". A bare number is in pixels.
type Dimension struct {
	Value float32
	Unit  Unit
}

// Size is a requested child size: "match_parent", "wrap_content"
// or a fixed Dimension. The zero Size is wrap_content.
type Size struct {
	Dimension
	fixed bool
	match bool
}

// Mode is a measurement mode: "exactly", "at_most" or "unspecified".
type Mode justify.Mode

// DpDimension returns a Dimension of v dp.
func DpDimension(v float32) Dimension {
	return Dimension{Value: v, Unit: Dp}
}

// Fixed returns a Size fixed to d.
func Fixed(d Dimension) Size {
	return Size{Dimension: d, fixed: true}
}

// Px converts d to pixels.
func (d Dimension) Px(m unit.Metric) int {
	switch d.Unit {
	case Dp:
		return m.Dp(unit.Dp(d.Value))
	case Sp:
		return m.Sp(unit.Sp(d.Value))
	default:
		return int(d.Value + .5)
	}
}

func (d Dimension) String() string {
	return strconv.FormatFloat(float64(d.Value), 'g', -1, 32) + d.Unit.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a dimension such as "20dp". Negative,
// non-finite and out of range values are errors.
func (d *Dimension) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	num, u := s, Px
	for _, suffix := range []Unit{Px, Dp, Sp} {
		if strings.HasSuffix(s, suffix.String()) {
			num, u = strings.TrimSpace(strings.TrimSuffix(s, suffix.String())), suffix
			break
		}
	}
	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		if strings.TrimLeft(num, "+-.0123456789") != "" {
			return fmt.Errorf("%q: %w", s, ErrUnit)
		}
		return fmt.Errorf("%q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q: not a finite number", s)
	}
	if v < 0 {
		return fmt.Errorf("%q: %w", s, ErrNegative)
	}
	if v > MaxDimension {
		return fmt.Errorf("%q: %w", s, ErrRange)
	}
	*d = Dimension{Value: float32(v), Unit: u}
	return nil
}

// Params converts s to a requested size in pixels.
func (s Size) Params(m unit.Metric) int {
	switch {
	case s.fixed:
		return s.Dimension.Px(m)
	case s.match:
		return justify.MatchParent
	default:
		return justify.WrapContent
	}
}

func (s Size) String() string {
	switch {
	case s.fixed:
		return s.Dimension.String()
	case s.match:
		return "match_parent"
	default:
		return "wrap_content"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses "match_parent", "wrap_content" or a
// Dimension.
func (s *Size) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "match_parent", "fill_parent":
		*s = Size{match: true}
		return nil
	case "wrap_content":
		*s = Size{}
		return nil
	}
	var d Dimension
	if err := d.UnmarshalText(text); err != nil {
		return err
	}
	*s = Fixed(d)
	return nil
}

func (m Mode) MarshalText() ([]byte, error) {
	switch justify.Mode(m) {
	case justify.Exactly:
		return []byte("exactly"), nil
	case justify.AtMost:
		return []byte("at_most"), nil
	case justify.Unspecified:
		return []byte("unspecified"), nil
	default:
		return nil, fmt.Errorf("%d: %w", m, ErrMode)
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "exactly", "exact":
		*m = Mode(justify.Exactly)
	case "at_most", "atmost":
		*m = Mode(justify.AtMost)
	case "unspecified", "":
		*m = Mode(justify.Unspecified)
	default:
		return fmt.Errorf("%q: %w", text, ErrMode)
	}
	return nil
}

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Dp:
		return "dp"
	case Sp:
		return "sp"
	default:
		panic("unreachable")
	}
}
