package poly

import (
	"testing"

	"github.com/opencam/camcore/geom"
)

func TestMergePathsJoinsWithinTolerance(t *testing.T) {
	a := geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}
	b := geom.Path{{X: 10, Y: 0}, {X: 10, Y: 10}}
	merged := MergePaths(geom.Paths{}, geom.Paths{a, b}, 1)
	if len(merged) != 1 {
		t.Fatalf("expected the two paths to merge into one, got %d", len(merged))
	}
	if len(merged[0].Path) != 4 {
		t.Fatalf("expected a 4-point merged path, got %d points", len(merged[0].Path))
	}
}

func TestMergePathsRespectsTolerance(t *testing.T) {
	a := geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}
	b := geom.Path{{X: 100, Y: 0}, {X: 100, Y: 10}}
	merged := MergePaths(geom.Paths{}, geom.Paths{a, b}, 1)
	if len(merged) != 2 {
		t.Fatalf("expected the distant paths to stay separate, got %d", len(merged))
	}
}

func TestMergePathsRefusesToCrossClipBoundary(t *testing.T) {
	clip := geom.Paths{square(0, 0, 5, 20)}
	a := geom.Path{{X: -5, Y: 2}, {X: -1, Y: 2}}
	b := geom.Path{{X: 1, Y: 2}, {X: 10, Y: 2}}
	merged := MergePaths(clip, geom.Paths{a, b}, 3)
	if len(merged) != 2 {
		t.Fatalf("expected paths separated by the clip boundary to stay unmerged, got %d", len(merged))
	}
}

func TestMergePathsSafeToCloseReflectsClipCrossing(t *testing.T) {
	clip := geom.Paths{square(0, 0, 100, 100)}
	loop := geom.Path{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}}
	merged := MergePaths(clip, geom.Paths{loop}, 1)
	if len(merged) != 1 {
		t.Fatalf("expected a single path, got %d", len(merged))
	}
	if !merged[0].SafeToClose {
		t.Fatal("expected closing a path wholly inside the clip region to be safe")
	}
}

func TestMergePathsSkipsEmptyInputs(t *testing.T) {
	merged := MergePaths(geom.Paths{}, geom.Paths{{}, {{X: 0, Y: 0}, {X: 1, Y: 1}}}, 1)
	if len(merged) != 1 {
		t.Fatalf("expected the empty sub-path to be skipped, got %d results", len(merged))
	}
}
