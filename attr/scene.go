// SPDX-License-Identifier: Unlicense OR MIT

// Package attr reads declarative justify layout attributes from TOML
// documents.
//
// A scene document describes a container and its children:
//
//	density = 2.0
//
//	[container]
//	horizontalSpacing = "20dp"
//	verticalSpacing = "12dp"
//	padding = "8dp"
//	width = "360dp"
//	widthMode = "exactly"
//
//	[[child]]
//	label = "alpha"
//	width = "wrap_content"
//	contentWidth = "64dp"
//	contentHeight = "32dp"
//
// Dimensions are strings with a px, dp or sp suffix.
package attr

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/pelletier/go-toml/v2"

	"justifylayout/justify"
	"justifylayout/unit"
)

// Container holds the attributes of a justify container.
type Container struct {
	HorizontalSpacing Dimension `toml:"horizontalSpacing"`
	VerticalSpacing   Dimension `toml:"verticalSpacing"`

	// Padding applies to every edge without its own override.
	Padding       Dimension  `toml:"padding"`
	PaddingTop    *Dimension `toml:"paddingTop,omitempty"`
	PaddingRight  *Dimension `toml:"paddingRight,omitempty"`
	PaddingBottom *Dimension `toml:"paddingBottom,omitempty"`
	PaddingLeft   *Dimension `toml:"paddingLeft,omitempty"`

	Width      Dimension `toml:"width"`
	Height     Dimension `toml:"height"`
	WidthMode  Mode      `toml:"widthMode"`
	HeightMode Mode      `toml:"heightMode"`
}

// Child holds the attributes of one child box.
type Child struct {
	Label  string `toml:"label"`
	Width  Size   `toml:"width"`
	Height Size   `toml:"height"`
	// ContentWidth and ContentHeight are the size the child wants
	// when it is not fixed.
	ContentWidth  Dimension `toml:"contentWidth"`
	ContentHeight Dimension `toml:"contentHeight"`
}

// Scene is a container with its children.
type Scene struct {
	// Density is the pixels per dp.
	Density float32 `toml:"density"`
	// FontScale scales sp relative to dp.
	FontScale float32   `toml:"fontScale"`
	Container Container `toml:"container"`
	Children  []Child   `toml:"child"`
}

// maxScale bounds the density and font scale of a scene.
const maxScale = 64

// DefaultContainer returns the container attributes used for
// anything a document leaves out.
func DefaultContainer() Container {
	return Container{
		HorizontalSpacing: DpDimension(justify.DefaultSpacing),
		VerticalSpacing:   DpDimension(justify.DefaultSpacing),
		Width:             DpDimension(360),
		WidthMode:         Mode(justify.Exactly),
		HeightMode:        Mode(justify.Unspecified),
	}
}

// DefaultScene returns an empty scene at density 1.
func DefaultScene() Scene {
	return Scene{
		Density:   1,
		FontScale: 1,
		Container: DefaultContainer(),
	}
}

// Parse decodes a scene document. Unknown keys are errors.
func Parse(data []byte) (Scene, error) {
	s := DefaultScene()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return s, fmt.Errorf("attr: parse scene: %w", err)
	}
	if s.Density <= 0 {
		return s, fmt.Errorf("attr: density %g: %w", s.Density, ErrNegative)
	}
	if s.FontScale <= 0 {
		return s, fmt.Errorf("attr: font scale %g: %w", s.FontScale, ErrNegative)
	}
	if s.Density > maxScale || s.FontScale > maxScale {
		return s, fmt.Errorf("attr: density %g, font scale %g: %w", s.Density, s.FontScale, ErrRange)
	}
	return s, nil
}

// Load reads and decodes the scene document at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultScene(), fmt.Errorf("attr: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes a scene document.
func Marshal(s Scene) ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("attr: marshal scene: %w", err)
	}
	return data, nil
}

// Metric returns the unit conversion of the scene.
func (s Scene) Metric() unit.Metric {
	return unit.Metric{
		PxPerDp: s.Density,
		PxPerSp: s.Density * s.FontScale,
	}
}

// Boxes returns a justify box for every child of the scene.
func (s Scene) Boxes() []*justify.Box {
	m := s.Metric()
	boxes := make([]*justify.Box, len(s.Children))
	for i, c := range s.Children {
		boxes[i] = c.Box(m)
	}
	return boxes
}

// Labels returns the child labels, in order.
func (s Scene) Labels() []string {
	labels := make([]string, len(s.Children))
	for i, c := range s.Children {
		labels[i] = c.Label
	}
	return labels
}

// Box converts the child attributes to a justify box.
func (c Child) Box(m unit.Metric) *justify.Box {
	return &justify.Box{
		Request: justify.Params{
			Width:  c.Width.Params(m),
			Height: c.Height.Params(m),
		},
		Intrinsic: image.Point{
			X: c.ContentWidth.Px(m),
			Y: c.ContentHeight.Px(m),
		},
	}
}

// Layout returns the justify layout configured by c.
func (c Container) Layout(m unit.Metric) justify.Layout {
	pad := func(edge *Dimension) int {
		if edge != nil {
			return edge.Px(m)
		}
		return c.Padding.Px(m)
	}
	return justify.Layout{
		HorizontalSpacing: c.HorizontalSpacing.Px(m),
		VerticalSpacing:   c.VerticalSpacing.Px(m),
		Padding: justify.Insets{
			Top:    pad(c.PaddingTop),
			Right:  pad(c.PaddingRight),
			Bottom: pad(c.PaddingBottom),
			Left:   pad(c.PaddingLeft),
		},
	}
}

// Constraints returns the container constraints configured by c.
func (c Container) Constraints(m unit.Metric) justify.Constraints {
	return justify.Constraints{
		Width:  justify.Spec{Mode: justify.Mode(c.WidthMode), Size: c.Width.Px(m)},
		Height: justify.Spec{Mode: justify.Mode(c.HeightMode), Size: c.Height.Px(m)},
	}
}
