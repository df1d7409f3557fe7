// SPDX-License-Identifier: Unlicense OR MIT

package justify

import (
	"image"
	"reflect"
	"testing"
	"testing/quick"
)

// recorder is a Box that remembers the constraints it was measured
// against and counts its placements.
type recorder struct {
	Box
	cs     []Constraints
	placed int
}

func (r *recorder) Measure(cs Constraints) image.Point {
	r.cs = append(r.cs, cs)
	return r.Box.Measure(cs)
}

func (r *recorder) Place(rect image.Rectangle) {
	r.placed++
	r.Box.Place(rect)
}

func boxes(sizes ...image.Point) []*Box {
	bs := make([]*Box, len(sizes))
	for i, sz := range sizes {
		bs[i] = NewBox(sz)
	}
	return bs
}

func TestThreeChildren(t *testing.T) {
	l := Layout{HorizontalSpacing: 20, VerticalSpacing: 20}
	bs := boxes(image.Pt(100, 50), image.Pt(100, 50), image.Pt(100, 50))
	children := Boxes(bs)

	m := l.Measure(Constraints{Width: Exact(300), Height: AtMostSize(1000)}, children)
	if got, want := m.Size, image.Pt(300, 120); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	rows := l.Place(m.Size.X, children)
	want := []Row{
		{Start: 0, End: 2, Width: 200, Height: 50, Gap: 33},
		{Start: 2, End: 3, Width: 100, Height: 50, Gap: 100},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Place rows = %+v, want %+v", rows, want)
	}
	if !reflect.DeepEqual(m.Rows, want) {
		t.Errorf("Measure rows = %+v, want %+v", m.Rows, want)
	}
	rects := []image.Rectangle{
		image.Rect(33, 0, 133, 50),
		image.Rect(166, 0, 266, 50),
		image.Rect(100, 70, 200, 120),
	}
	for i, b := range bs {
		if b.Rect != rects[i] {
			t.Errorf("child %d placed at %v, want %v", i, b.Rect, rects[i])
		}
	}
}

func TestNoChildren(t *testing.T) {
	l := Layout{
		HorizontalSpacing: 20,
		VerticalSpacing:   20,
		Padding:           Insets{Top: 1, Right: 2, Bottom: 3, Left: 4},
	}
	m := l.Measure(Constraints{Width: AtMostSize(300), Height: Unbounded()}, nil)
	if got, want := m.Size, image.Pt(6, 4); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	if len(m.Rows) != 0 {
		t.Errorf("Measure rows = %v, want none", m.Rows)
	}
	if rows := l.Place(300, nil); len(rows) != 0 {
		t.Errorf("Place rows = %v, want none", rows)
	}
	m = l.Measure(Constraints{Width: Exact(300), Height: Exact(200)}, nil)
	if got, want := m.Size, image.Pt(300, 200); got != want {
		t.Errorf("exact Measure size = %v, want %v", got, want)
	}
}

func TestOversizedFirstChild(t *testing.T) {
	l := Layout{HorizontalSpacing: 20, VerticalSpacing: 10}
	bs := boxes(image.Pt(150, 30))
	children := Boxes(bs)

	// The child is capped by the AtMost bound and still fails the
	// break test, leaving an empty first row.
	m := l.Measure(Constraints{Width: Exact(100), Height: Unbounded()}, children)
	if got, want := m.Size, image.Pt(100, 40); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	rows := l.Place(100, children)
	want := []Row{
		{Start: 0, End: 0, Gap: 100},
		{Start: 0, End: 1, Width: 100, Height: 30, Gap: 0},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Place rows = %+v, want %+v", rows, want)
	}
	if got, want := bs[0].Rect, image.Rect(0, 10, 100, 40); got != want {
		t.Errorf("child placed at %v, want %v", got, want)
	}
}

func TestNegativeGap(t *testing.T) {
	l := Layout{HorizontalSpacing: 20, VerticalSpacing: 10}
	b := NewBox(image.Pt(150, 30))
	b.Request.Width = 150
	children := []Child{b}

	l.Measure(Constraints{Width: Exact(100), Height: Unbounded()}, children)
	rows := l.Place(100, children)
	if got := rows[len(rows)-1].Gap; got != -25 {
		t.Errorf("gap = %d, want -25", got)
	}
	if got, want := b.Rect, image.Rect(-25, 10, 125, 40); got != want {
		t.Errorf("child placed at %v, want %v", got, want)
	}
}

func TestChildConstraints(t *testing.T) {
	l := Layout{
		HorizontalSpacing: 5,
		Padding:           Insets{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}
	fixed := &recorder{Box: Box{Request: Params{Width: 40, Height: 30}}}
	flexible := &recorder{Box: Box{Request: Params{Width: MatchParent, Height: WrapContent}}}
	children := []Child{fixed, flexible}

	l.Measure(Constraints{Width: Exact(200), Height: AtMostSize(100)}, children)
	if got, want := fixed.cs[0], (Constraints{Width: Exact(40), Height: Exact(30)}); got != want {
		t.Errorf("fixed child constraints = %+v, want %+v", got, want)
	}
	if got, want := flexible.cs[0], (Constraints{Width: AtMostSize(180), Height: AtMostSize(80)}); got != want {
		t.Errorf("flexible child constraints = %+v, want %+v", got, want)
	}

	l.Measure(Constraints{Width: Exact(200), Height: Unbounded()}, children)
	if got, want := fixed.cs[1].Height, Exact(30); got != want {
		t.Errorf("fixed child height = %+v, want %+v", got, want)
	}
	if got, want := flexible.cs[1].Height, Unbounded(); got != want {
		t.Errorf("flexible child height = %+v, want %+v", got, want)
	}
}

func TestPadding(t *testing.T) {
	l := Layout{
		HorizontalSpacing: 10,
		VerticalSpacing:   5,
		Padding:           Insets{Top: 7, Right: 20, Bottom: 3, Left: 20},
	}
	bs := boxes(image.Pt(50, 20), image.Pt(50, 10))
	children := Boxes(bs)

	m := l.Measure(Constraints{Width: AtMostSize(200), Height: Unbounded()}, children)
	if got, want := m.Size, image.Pt(140, 30); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	rows := l.Place(200, children)
	if len(rows) != 1 || rows[0].Gap != 20 {
		t.Fatalf("Place rows = %+v, want one row with gap 20", rows)
	}
	if got, want := bs[0].Rect, image.Rect(40, 7, 90, 27); got != want {
		t.Errorf("first child placed at %v, want %v", got, want)
	}
	if got, want := bs[1].Rect, image.Rect(110, 7, 160, 17); got != want {
		t.Errorf("second child placed at %v, want %v", got, want)
	}
}

func TestAtMostWidth(t *testing.T) {
	l := Layout{HorizontalSpacing: 20, VerticalSpacing: 20}
	bs := boxes(image.Pt(100, 50), image.Pt(100, 50), image.Pt(100, 50))
	children := Boxes(bs)

	m := l.Measure(Constraints{Width: AtMostSize(300), Height: Unbounded()}, children)
	if got, want := m.Size, image.Pt(200, 120); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	if m.Width != 300 {
		t.Errorf("Measure width = %d, want 300", m.Width)
	}
	rows := l.Place(m.Width, children)
	if !reflect.DeepEqual(rows, m.Rows) {
		t.Errorf("Place rows = %+v, want %+v", rows, m.Rows)
	}
	if got, want := bs[2].Rect, image.Rect(100, 70, 200, 120); got != want {
		t.Errorf("last child placed at %v, want %v", got, want)
	}
	// Placing at the narrower reported width regroups the children.
	if rows := l.Place(m.Size.X, children); len(rows) == len(m.Rows) {
		t.Errorf("Place(%d) rows = %+v, want a different grouping", m.Size.X, rows)
	}
}

func TestUnspecifiedWidth(t *testing.T) {
	// No width is available, so every child fails the break test and
	// gets a row of its own, after an empty first row.
	l := Layout{HorizontalSpacing: 5, VerticalSpacing: 5}
	rs := make([]*recorder, 3)
	children := make([]Child, len(rs))
	for i := range rs {
		rs[i] = &recorder{Box: Box{Request: Params{Width: 10, Height: 10}}}
		children[i] = rs[i]
	}
	m := l.Measure(Constraints{Width: Unbounded(), Height: Unbounded()}, children)
	if got, want := m.Size, image.Pt(10, 45); got != want {
		t.Errorf("Measure size = %v, want %v", got, want)
	}
	rows := l.Place(m.Width, children)
	want := []Row{
		{Start: 0, End: 0},
		{Start: 0, End: 1, Width: 10, Height: 10, Gap: -5},
		{Start: 1, End: 2, Width: 10, Height: 10, Gap: -5},
		{Start: 2, End: 3, Width: 10, Height: 10, Gap: -5},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Place rows = %+v, want %+v", rows, want)
	}
	for i, r := range rs {
		if want := image.Rect(-5, 5+15*i, 5, 15+15*i); r.Rect != want {
			t.Errorf("child %d placed at %v, want %v", i, r.Rect, want)
		}
	}
}

func TestPlaceOncePerCycle(t *testing.T) {
	l := Layout{HorizontalSpacing: 10, VerticalSpacing: 10}
	rs := make([]*recorder, 5)
	children := make([]Child, len(rs))
	for i := range rs {
		rs[i] = &recorder{Box: *NewBox(image.Pt(40+10*i, 20))}
		children[i] = rs[i]
	}
	cs := Constraints{Width: Exact(150), Height: Unbounded()}
	for cycle := 1; cycle <= 2; cycle++ {
		m := l.Measure(cs, children)
		l.Place(m.Width, children)
		for i, r := range rs {
			if len(r.cs) != cycle || r.placed != cycle {
				t.Errorf("cycle %d: child %d measured %d and placed %d times", cycle, i, len(r.cs), r.placed)
			}
		}
	}
}

func TestExcessAfterBreak(t *testing.T) {
	// After a break the committed spacing restarts at zero: the 55
	// wide child joins the second row, which it would not with the
	// spacing committed.
	l := Layout{HorizontalSpacing: 10}
	sizes := []image.Point{
		{X: 50}, {X: 50},
		{X: 55}, {X: 40},
	}
	rows := l.Rows(125, sizes)
	var got [][2]int
	for _, r := range rows {
		got = append(got, [2]int{r.Start, r.End})
	}
	want := [][2]int{{0, 1}, {1, 3}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

type sizeList []image.Point

func (s sizeList) children() []Child {
	bs := make([]*Box, len(s))
	for i, sz := range s {
		bs[i] = NewBox(sz)
	}
	return Boxes(bs)
}

func toSizes(ws []uint8) sizeList {
	sizes := make(sizeList, len(ws))
	for i, w := range ws {
		sizes[i] = image.Point{X: int(w), Y: int(w%7) + 1}
	}
	return sizes
}

func TestRowConsistency(t *testing.T) {
	modes := []Mode{Exactly, AtMost, Unspecified}
	f := func(ws []uint8, spacing uint8, width uint16, vspacing uint8, mode uint8) bool {
		l := Layout{
			HorizontalSpacing: int(spacing % 32),
			VerticalSpacing:   int(vspacing % 32),
			Padding:           Insets{Left: 3, Right: 5},
		}
		children := toSizes(ws).children()
		wspec := Spec{Mode: modes[int(mode)%len(modes)], Size: int(width)}
		m := l.Measure(Constraints{Width: wspec, Height: Unbounded()}, children)
		if wspec.Mode == Exactly && m.Width != m.Size.X {
			return false
		}
		rows := l.Place(m.Width, children)
		return reflect.DeepEqual(m.Rows, rows)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGapSymmetry(t *testing.T) {
	f := func(ws []uint8, spacing uint8, width uint16) bool {
		l := Layout{HorizontalSpacing: int(spacing % 32)}
		budget := int(width)
		for _, r := range l.Rows(budget, toSizes(ws)) {
			k := r.Len()
			if r.Gap != (budget-r.Width)/(k+1) {
				return false
			}
			if r.Width <= budget {
				used := r.Width + r.Gap*(k+1)
				if used > budget || budget-used > k {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMonotonicRows(t *testing.T) {
	f := func(ws []uint8, extra uint8, spacing uint8, width uint16) bool {
		l := Layout{HorizontalSpacing: int(spacing % 32)}
		sizes := toSizes(ws)
		before := l.Rows(int(width), sizes)
		after := l.Rows(int(width), append(sizes, image.Point{X: int(extra)}))
		if len(before) == 0 {
			return true
		}
		// Every row but the last is unchanged, and the last one keeps
		// its children.
		n := len(before) - 1
		if !reflect.DeepEqual(before[:n], after[:n]) {
			return false
		}
		return after[n].Start == before[n].Start && after[n].End >= before[n].End
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestNoWrap(t *testing.T) {
	f := func(ws []uint8, spacing uint8) bool {
		if len(ws) == 0 {
			return true
		}
		h := int(spacing % 32)
		sizes := toSizes(ws)
		width := 0
		for _, sz := range sizes {
			width += sz.X
		}
		// The break test reserves a leading gap and the gap already
		// committed, so n+1 gaps always fit on one row.
		width += (len(sizes) + 1) * h
		rows := Layout{HorizontalSpacing: h}.Rows(width, sizes)
		return len(rows) == 1 && rows[0].Len() == len(sizes)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIdempotence(t *testing.T) {
	l := Layout{HorizontalSpacing: 8, VerticalSpacing: 4, Padding: Insets{Top: 2, Left: 2, Right: 2, Bottom: 2}}
	bs := boxes(image.Pt(30, 10), image.Pt(70, 12), image.Pt(45, 9), image.Pt(90, 20), image.Pt(10, 10))
	children := Boxes(bs)
	cs := Constraints{Width: Exact(160), Height: Unbounded()}

	run := func() (Measurement, []Row, []image.Rectangle) {
		m := l.Measure(cs, children)
		rows := l.Place(m.Width, children)
		rects := make([]image.Rectangle, len(bs))
		for i, b := range bs {
			rects[i] = b.Rect
		}
		return m, rows, rects
	}
	m1, rows1, rects1 := run()
	m2, rows2, rects2 := run()
	if !reflect.DeepEqual(m1, m2) || !reflect.DeepEqual(rows1, rows2) || !reflect.DeepEqual(rects1, rects2) {
		t.Errorf("second layout cycle differs:\n%+v %+v %v\n%+v %+v %v", m1, rows1, rects1, m2, rows2, rects2)
	}
}

func TestSpecConstrain(t *testing.T) {
	tests := []struct {
		s    Spec
		v    int
		want int
	}{
		{Exact(10), 40, 10},
		{Exact(10), 5, 10},
		{AtMostSize(10), 40, 10},
		{AtMostSize(10), 5, 5},
		{Unbounded(), 40, 40},
	}
	for _, tc := range tests {
		if got := tc.s.Constrain(tc.v); got != tc.want {
			t.Errorf("%v(%d).Constrain(%d) = %d, want %d", tc.s.Mode, tc.s.Size, tc.v, got, tc.want)
		}
	}
}

func BenchmarkLayout(b *testing.B) {
	l := Layout{HorizontalSpacing: 20, VerticalSpacing: 20}
	var sizes sizeList
	for i := 0; i < 100; i++ {
		sizes = append(sizes, image.Point{X: 40 + i%60, Y: 20 + i%10})
	}
	children := sizes.children()
	cs := Constraints{Width: Exact(1080), Height: Unbounded()}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := l.Measure(cs, children)
		l.Place(m.Size.X, children)
	}
}
