package world

import "testing"

func TestNewRectBounds(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	if r.X1 != 3 || r.Y1 != 4 || r.X2 != 9 || r.Y2 != 12 {
		t.Errorf("NewRect(3,4,6,8) = %+v, want {3 4 9 12}", r)
	}
}

func TestRectCenter(t *testing.T) {
	cases := []struct {
		name         string
		rect         Rect
		wantX, wantY int
	}{
		{"even bounds", NewRect(0, 0, 4, 4), 2, 2},
		{"odd bounds truncate down", NewRect(0, 0, 5, 5), 2, 2},
		{"offset origin", NewRect(10, 20, 6, 4), 13, 22},
	}
	for _, c := range cases {
		gotX, gotY := c.rect.Center()
		if gotX != c.wantX || gotY != c.wantY {
			t.Errorf("%s: Center() = (%d,%d), want (%d,%d)", c.name, gotX, gotY, c.wantX, c.wantY)
		}
	}
}

func TestRectCenterInsideRect(t *testing.T) {
	r := NewRect(7, 3, 9, 5)
	cx, cy := r.Center()
	if cx < r.X1 || cx > r.X2 || cy < r.Y1 || cy > r.Y2 {
		t.Errorf("center (%d,%d) outside rect %+v", cx, cy, r)
	}
}

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 5, 5), NewRect(3, 3, 5, 5), true},
		{"disjoint", NewRect(0, 0, 4, 4), NewRect(10, 10, 4, 4), false},
		{"edge touching counts", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), true},
		{"corner touching counts", NewRect(0, 0, 4, 4), NewRect(4, 4, 4, 4), true},
		{"one past the edge", NewRect(0, 0, 4, 4), NewRect(5, 0, 4, 4), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), true},
	}
	for _, c := range cases {
		if got := c.a.Intersects(c.b); got != c.want {
			t.Errorf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
		// Intersection is symmetric.
		if got := c.b.Intersects(c.a); got != c.want {
			t.Errorf("%s (reversed): Intersects = %v, want %v", c.name, got, c.want)
		}
	}
}
