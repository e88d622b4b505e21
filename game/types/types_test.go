package types

import "testing"

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{X: 0, Y: 1}},
		{Right, Point{X: 1, Y: 0}},
		{Down, Point{X: 0, Y: -1}},
		{Left, Point{X: -1, Y: 0}},
	}

	for _, tt := range tests {
		if got := tt.dir.Offset(); got != tt.want {
			t.Errorf("Expected %v offset %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		opp := d.Opposite()
		if opp == d {
			t.Errorf("Expected opposite of %v to differ", d)
		}
		if opp.Opposite() != d {
			t.Errorf("Expected opposite of opposite of %v to be %v, got %v", d, d, opp.Opposite())
		}
		if d.Offset().Add(opp.Offset()) != (Point{}) {
			t.Errorf("Expected %v and %v offsets to cancel", d, opp)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 16, Height: 16}

	inside := []Point{{0, 0}, {15, 15}, {5, 6}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Expected %v inside grid", p)
		}
	}

	outside := []Point{{-1, 0}, {0, -1}, {16, 0}, {0, 16}}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Expected %v outside grid", p)
		}
	}

	if g.Cells() != 256 {
		t.Errorf("Expected 256 cells, got %d", g.Cells())
	}
}
