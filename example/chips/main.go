// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program showing tags in justified rows. Tap a tag to select it.

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"justifylayout/attr"
	"justifylayout/justify"
	"justifylayout/outlay"
)

var sceneFile = flag.String("scene", "", "scene document with the tags and spacing (TOML).")

const defaultScene = `
[container]
horizontalSpacing = "12dp"
verticalSpacing = "12dp"
padding = "16dp"

[[child]]
label = "layout"
[[child]]
label = "justify"
[[child]]
label = "rows"
[[child]]
label = "gaps"
[[child]]
label = "constraints"
[[child]]
label = "measure"
[[child]]
label = "place"
[[child]]
label = "dp"
[[child]]
label = "wrap"
[[child]]
label = "mobile"
`

type chip struct {
	label         string
	width, height unit.Dp
	click    widget.Clickable
	selected bool
}

func main() {
	flag.Parse()
	s, err := loadScene()
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Justify"), app.Size(unit.Dp(400), unit.Dp(600)))
		if err := loop(w, s); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadScene() (attr.Scene, error) {
	if *sceneFile != "" {
		return attr.Load(*sceneFile)
	}
	return attr.Parse([]byte(defaultScene))
}

func loop(w *app.Window, s attr.Scene) error {
	th := material.NewTheme()
	icon, err := widget.NewIcon(icons.ActionLabel)
	if err != nil {
		return err
	}
	// Scene dimensions are converted back to dp; the window metric
	// does the scaling. The window decides the container size, so the
	// scene's width and height are not used.
	m := s.Metric()
	dp := func(px int) unit.Dp {
		return unit.Dp(m.PxToDp(px))
	}
	size := func(sz attr.Size) unit.Dp {
		switch px := sz.Params(m); px {
		case justify.MatchParent:
			return outlay.Match
		case justify.WrapContent:
			return outlay.Wrap
		default:
			return dp(px)
		}
	}
	l := s.Container.Layout(m)
	j := outlay.Justify{
		HorizontalSpacing: dp(l.HorizontalSpacing),
		VerticalSpacing:   dp(l.VerticalSpacing),
		Padding: layout.Inset{
			Top:    dp(l.Padding.Top),
			Right:  dp(l.Padding.Right),
			Bottom: dp(l.Padding.Bottom),
			Left:   dp(l.Padding.Left),
		},
	}
	chips := make([]*chip, len(s.Children))
	for i, c := range s.Children {
		chips[i] = &chip{label: c.Label, width: size(c.Width), height: size(c.Height)}
	}
	list := widget.List{List: layout.List{Axis: layout.Vertical}}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			material.List(th, &list).Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
				children := make([]outlay.JustifyChild, len(chips))
				for i, ch := range chips {
					children[i] = outlay.Sized(ch.width, ch.height, func(gtx layout.Context) layout.Dimensions {
						return ch.layout(gtx, th, icon)
					})
				}
				return j.Layout(gtx, children...)
			})
			e.Frame(gtx.Ops)
		}
	}
}

func (c *chip) layout(gtx layout.Context, th *material.Theme, icon *widget.Icon) layout.Dimensions {
	if c.click.Clicked(gtx) {
		c.selected = !c.selected
	}
	bg, fg := color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, th.Palette.Fg
	if c.selected {
		bg, fg = th.Palette.ContrastBg, th.Palette.ContrastFg
	}
	return c.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				sz := gtx.Constraints.Min
				rr := gtx.Dp(16)
				paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: sz}, rr).Op(gtx.Ops))
				return layout.Dimensions{Size: sz}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Top: 6, Bottom: 6, Left: 10, Right: 12}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							gtx.Constraints.Min.X = gtx.Dp(18)
							return icon.Layout(gtx, fg)
						}),
						layout.Rigid(layout.Spacer{Width: 6}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							l := material.Body1(th, c.label)
							l.Color = fg
							l.MaxLines = 1
							return l.Layout(gtx)
						}),
					)
				})
			},
		)
	})
}
