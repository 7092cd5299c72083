package graphics_test

import (
	"testing"

	"github.com/uiforge/forge/pkg/graphics"
)

func TestSnap(t *testing.T) {
	cases := []struct {
		name string
		in   graphics.Offset
		grid float64
		want graphics.Offset
	}{
		{"rounds down", graphics.Offset{X: 11, Y: 3}, 8, graphics.Offset{X: 8, Y: 0}},
		{"rounds up", graphics.Offset{X: 13, Y: 5}, 8, graphics.Offset{X: 16, Y: 8}},
		{"midpoint rounds away", graphics.Offset{X: 12, Y: 4}, 8, graphics.Offset{X: 16, Y: 8}},
		{"exact multiple", graphics.Offset{X: 24, Y: -16}, 8, graphics.Offset{X: 24, Y: -16}},
		{"unit grid", graphics.Offset{X: 1.4, Y: 2.6}, 1, graphics.Offset{X: 1, Y: 3}},
		{"zero grid disables", graphics.Offset{X: 11.5, Y: 3.25}, 0, graphics.Offset{X: 11.5, Y: 3.25}},
		{"negative grid disables", graphics.Offset{X: 11.5, Y: 3.25}, -2, graphics.Offset{X: 11.5, Y: 3.25}},
	}
	for _, c := range cases {
		if got := graphics.Snap(c.in, c.grid); got != c.want {
			t.Errorf("%s: Snap(%+v, %v) = %+v, want %+v", c.name, c.in, c.grid, got, c.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := graphics.RectFromLTWH(10, 20, 100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("rect dimensions = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if !r.Contains(graphics.Offset{X: 10, Y: 20}) {
		t.Error("rect must contain its top-left corner")
	}
	if r.Contains(graphics.Offset{X: 110, Y: 70}) {
		t.Error("rect must exclude its bottom-right corner")
	}
	if !r.Intersects(graphics.RectFromLTWH(100, 60, 20, 20)) {
		t.Error("overlapping rects reported as disjoint")
	}
	if r.Intersects(graphics.RectFromLTWH(110, 20, 20, 20)) {
		t.Error("edge-adjacent rects reported as overlapping")
	}
}
