// SPDX-License-Identifier: Unlicense OR MIT

// Command justifyviz lays out a scene document and draws the result
// to a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"justifylayout/attr"
	"justifylayout/internal/render"
	"justifylayout/justify"
)

var (
	input    = flag.String("in", "", "scene document (TOML).")
	output   = flag.String("o", "layout.png", "output PNG file.")
	density  = flag.Float64("density", 0, "override the scene density (pixels per dp).")
	fontSize = flag.Float64("fontsize", 12, "label size in pixels.")
	verbose  = flag.Bool("v", false, "print the rows.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "justifyviz: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *input == "" {
		return errors.New("specify a scene document with -in")
	}
	s, err := attr.Load(*input)
	if err != nil {
		return err
	}
	if *density > 0 {
		s.Density = float32(*density)
	}
	scene := layoutScene(s)
	if *verbose {
		for i, r := range scene.Rows {
			fmt.Printf("row %d: children [%d,%d) width %d height %d gap %d\n", i, r.Start, r.End, r.Width, r.Height, r.Gap)
		}
	}
	return render.SavePNG(*output, scene, render.Options{FontSize: *fontSize})
}

// layoutScene runs both layout passes over the scene children. The
// drawn container is at least as wide as the width the rows were
// justified across, which an AtMost container may not report.
func layoutScene(s attr.Scene) render.Scene {
	m := s.Metric()
	l := s.Container.Layout(m)
	boxes := s.Boxes()
	children := justify.Boxes(boxes)
	dims := l.Measure(s.Container.Constraints(m), children)
	rows := l.Place(dims.Width, children)
	rects := make([]image.Rectangle, len(boxes))
	for i, b := range boxes {
		rects[i] = b.Rect
	}
	size := dims.Size
	size.X = max(size.X, dims.Width)
	return render.Scene{
		Size:   size,
		Layout: l,
		Rows:   rows,
		Rects:  rects,
		Labels: s.Labels(),
	}
}

const mainUsage = `The justifyviz command lays out the children of a scene document
in justified rows and draws them to a PNG image.

Usage:

	justifyviz -in scene.toml [flags]

`
