package geom

import "testing"

func TestAreaSquare(t *testing.T) {
	square := Path{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
	if a := Area(square); a != 400 {
		t.Fatalf("expected area 400, got %v", a)
	}
	if !IsPositive(square) {
		t.Fatal("expected square to be positive (outer)")
	}
	if IsPositive(square.Reverse()) {
		t.Fatal("expected reversed square to be negative (hole)")
	}
}

func TestAreaDegenerate(t *testing.T) {
	tests := []Path{nil, {{0, 0}}, {{0, 0}, {1, 1}}}
	for _, p := range tests {
		if a := Area(p); a != 0 {
			t.Fatalf("expected 0 area for %v, got %v", p, a)
		}
	}
}

func TestAreaLargeCoordinatesNoOverflow(t *testing.T) {
	// Coordinates near the ±1e9 mm bound, scaled by 1e6 internal units/mm.
	const big = int64(900_000_000) * Scale
	square := Path{{-big, -big}, {big, -big}, {big, big}, {-big, big}}
	a := Area(square)
	if a <= 0 {
		t.Fatalf("expected large positive area, got %v", a)
	}
}

func TestBounds(t *testing.T) {
	p := Path{{-5, 3}, {10, -2}, {0, 8}}
	b := Bounds(p)
	want := Rect{MinX: -5, MinY: -2, MaxX: 10, MaxY: 8}
	if b != want {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
}

func TestBoundsAllSkipsEmptyPaths(t *testing.T) {
	ps := Paths{{}, {{1, 1}, {3, 3}}}
	b := BoundsAll(ps)
	want := Rect{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	if b != want {
		t.Fatalf("expected %+v, got %+v", want, b)
	}
}

func TestStripDuplicates(t *testing.T) {
	p := Path{{0, 0}, {0, 0}, {5, 0}, {5, 0}, {5, 5}, {0, 0}}
	out := StripDuplicates(p, true)
	want := Path{{0, 0}, {5, 0}, {5, 5}}
	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, out)
		}
	}
}

func TestClosedDuplicatesFirstVertex(t *testing.T) {
	p := Path{{0, 0}, {1, 0}, {1, 1}}
	c := p.Closed()
	if len(c) != 4 || !c[3].Equal(c[0]) {
		t.Fatalf("expected closing vertex duplicated, got %v", c)
	}
}

func TestCrossSign(t *testing.T) {
	// b is straight ahead from a; c is to the left of a->b.
	a, b, c := Point{0, 0}, Point{10, 0}, Point{10, 10}
	if CrossSign(a, b, c) <= 0 {
		t.Fatal("expected positive cross sign for left turn")
	}
	if CrossSign(a, b, Point{10, -10}) >= 0 {
		t.Fatal("expected negative cross sign for right turn")
	}
	if CrossSign(a, b, Point{20, 0}) != 0 {
		t.Fatal("expected zero cross sign for collinear points")
	}
}
