// SPDX-License-Identifier: Unlicense OR MIT

package justify

import "image"

// Row is a run of children sharing a visual line.
type Row struct {
	// Start and End delimit the children [Start, End) of the row.
	Start, End int
	// Width is the sum of the children widths, without gaps.
	Width int
	// Height is the height of the tallest child.
	Height int
	// Gap is the space before, between and after the children.
	// It is negative when the children overflow the row.
	Gap int
}

// Len returns the number of children in the row.
func (r Row) Len() int {
	return r.End - r.Start
}

// Rows groups children of the given sizes into rows no wider than
// budget, the container width less its horizontal padding.
//
// A child starts a new row when twice the horizontal spacing, plus the
// spacing already committed in the row, plus the row and child widths
// exceed budget. The extra spacing keeps room for the leading gap.
// When the first child alone fails the test, the first row is empty.
func (l Layout) Rows(budget int, sizes []image.Point) []Row {
	if len(sizes) == 0 {
		return nil
	}
	var (
		rows  []Row
		ln    line
		start int
	)
	for i, sz := range sizes {
		if ln.breaks(l.HorizontalSpacing, budget, sz.X) {
			rows = append(rows, ln.row(start, i, budget))
			ln = line{}
			start = i
		} else {
			ln.excess = l.HorizontalSpacing
		}
		ln.width += sz.X
		ln.height = max(ln.height, sz.Y)
	}
	return append(rows, ln.row(start, len(sizes), budget))
}

// line accumulates the row being filled.
type line struct {
	width, height int
	// excess is the spacing committed before the next child: zero
	// right after a break, the horizontal spacing otherwise.
	excess int
}

func (ln line) breaks(spacing, budget, w int) bool {
	return 2*spacing+ln.excess+ln.width+w > budget
}

func (ln line) row(start, end, budget int) Row {
	return Row{
		Start:  start,
		End:    end,
		Width:  ln.width,
		Height: ln.height,
		Gap:    (budget - ln.width) / (end - start + 1),
	}
}
