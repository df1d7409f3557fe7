// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Fyne program showing buttons in justified rows. Resize the window
// to watch them wrap.

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"justifylayout/fynelayout"
	"justifylayout/justify"
)

func main() {
	a := app.New()
	w := a.NewWindow("Justify")
	w.Resize(fyne.NewSize(420, 360))

	status := widget.NewLabel("Tap a button")
	var buttons []fyne.CanvasObject
	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa"} {
		name := name
		buttons = append(buttons, widget.NewButton(name, func() {
			status.SetText(fmt.Sprintf("Tapped %s", name))
		}))
	}
	rows := container.New(fynelayout.NewJustifyLayout(justify.DefaultSpacing, justify.DefaultSpacing), buttons...)
	w.SetContent(container.NewBorder(nil, status, nil, nil, container.NewVScroll(rows)))
	w.ShowAndRun()
}
