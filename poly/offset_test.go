package poly

import (
	"math"
	"testing"

	"github.com/opencam/camcore/geom"
)

func totalArea(paths geom.Paths) float64 {
	total := 0.0
	for _, p := range paths {
		total += math.Abs(geom.Area(p))
	}
	return total
}

func TestOffsetZeroDeltaIsIdentity(t *testing.T) {
	sq := geom.Paths{square(0, 0, 1000, 1000)}
	out := Offset(sq, 0)
	if len(out) != 1 {
		t.Fatalf("expected one path, got %d", len(out))
	}
	if got := geom.Area(out[0]); got != 1000*1000 {
		t.Fatalf("expected unchanged area 1e6, got %v", got)
	}
}

func TestOffsetShrinksSquare(t *testing.T) {
	sq := geom.Paths{square(0, 0, 10000, 10000)}
	out := Offset(sq, -1000)
	total := totalArea(out)
	want := 8000.0 * 8000.0
	if total < want*0.7 || total > want*1.1 {
		t.Fatalf("expected shrunk area near %v, got %v", want, total)
	}
}

func TestOffsetGrowsSquare(t *testing.T) {
	sq := geom.Paths{square(0, 0, 10000, 10000)}
	out := Offset(sq, 1000)
	total := totalArea(out)
	original := 10000.0 * 10000.0
	miterBound := 12000.0 * 12000.0
	if total <= original {
		t.Fatalf("expected grown area larger than original %v, got %v", original, total)
	}
	if total > miterBound {
		t.Fatalf("expected grown area no larger than the square-cornered bound %v, got %v", miterBound, total)
	}
}

func TestOffsetCollapsesWhenShrinkExceedsHalfWidth(t *testing.T) {
	sq := geom.Paths{square(0, 0, 1000, 1000)}
	out := Offset(sq, -600)
	total := totalArea(out)
	if total > 50000 {
		t.Fatalf("expected the over-shrunk contour to collapse away, got residual area %v", total)
	}
}

func TestOffsetRoundTripApproximatelyRecoversArea(t *testing.T) {
	sq := geom.Paths{square(0, 0, 10000, 10000)}
	grown := Offset(sq, 500)
	back := Offset(grown, -500)
	total := totalArea(back)
	original := 10000.0 * 10000.0
	if total < original*0.8 || total > original*1.2 {
		t.Fatalf("expected round-tripped area close to original %v, got %v", original, total)
	}
}

func TestOffsetOfEmptyInputIsEmpty(t *testing.T) {
	out := Offset(geom.Paths{}, -500)
	if len(out) != 0 {
		t.Fatalf("expected no output for empty input, got %d paths", len(out))
	}
}
