package poly

import (
	"testing"

	"github.com/opencam/camcore/geom"
)

func pt(x, y int64) geom.Point { return geom.Point{X: x, Y: y} }

func TestCrossesDetectsProperCrossing(t *testing.T) {
	clip := geom.Paths{square(0, 0, 10, 10)}
	if !Crosses(clip, pt(-5, 5), pt(15, 5)) {
		t.Fatal("expected a crossing through the square")
	}
}

func TestCrossesIgnoresSegmentEntirelyOutside(t *testing.T) {
	clip := geom.Paths{square(0, 0, 10, 10)}
	if Crosses(clip, pt(20, 20), pt(30, 30)) {
		t.Fatal("expected no crossing for a segment that never touches the square")
	}
}

func TestCrossesIgnoresTangentTouchAtVertex(t *testing.T) {
	clip := geom.Paths{square(0, 0, 10, 10)}
	if Crosses(clip, pt(0, 0), pt(-5, -5)) {
		t.Fatal("expected a shared vertex not to count as a crossing")
	}
}

func TestCrossesIgnoresSegmentLyingOnBoundary(t *testing.T) {
	clip := geom.Paths{square(0, 0, 10, 10)}
	if Crosses(clip, pt(0, 0), pt(10, 0)) {
		t.Fatal("expected a boundary-aligned segment not to count as a crossing")
	}
}

func TestCrossesEmptyClipNeverCrosses(t *testing.T) {
	if Crosses(geom.Paths{}, pt(0, 0), pt(100, 100)) {
		t.Fatal("expected an empty clip region to never be crossed")
	}
}
