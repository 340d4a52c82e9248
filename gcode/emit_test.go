package gcode

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencam/camcore/cam"
	"github.com/opencam/camcore/geom"
)

func testJob() Job {
	return Job{
		Units:       Millimeters,
		TopZ:        0,
		BotZ:        -10,
		SafeZ:       10,
		PassDepth:   2,
		PlungeFeed:  100,
		CutFeed:     200,
		RapidFeed:   1000,
		RetractFeed: 300,
		Decimal:     -1,
		XScale:      1,
		YScale:      -1,
		ZScale:      1,
		TabZ:        -10,
	}
}

// zValues extracts every Z coordinate emitted by lines.
func zValues(t *testing.T, lines []string) []float64 {
	t.Helper()
	var zs []float64
	for _, line := range lines {
		if strings.HasPrefix(line, ";") {
			continue
		}
		for _, f := range strings.Fields(line) {
			if strings.HasPrefix(f, "Z") {
				v, err := strconv.ParseFloat(f[1:], 64)
				require.NoError(t, err, "line %q", line)
				zs = append(zs, v)
			}
		}
	}
	return zs
}

func TestGenerateEmptyJob(t *testing.T) {
	lines, warnings := Generate(testJob(), nil)
	require.Empty(t, warnings)
	require.Equal(t, []string{
		"G21",
		"G90",
		"G0 Z10.00 F1000.00",
		"; origin offset: X0.00 Y0.00",
		"M2",
	}, lines)
}

func TestGenerateInchUnitsAndDecimals(t *testing.T) {
	job := testJob()
	job.Units = Inches
	lines, _ := Generate(job, nil)
	require.Equal(t, "G20", lines[0])
	require.Equal(t, "G0 Z10.000 F1000.00", lines[2])
}

func TestReturnTo00EndsWithRapidToOrigin(t *testing.T) {
	job := testJob()
	job.ReturnTo00 = true
	lines, _ := Generate(job, nil)
	require.Equal(t, "M2", lines[len(lines)-1])
	require.Equal(t, "G0 X0.00 Y0.00 F1000.00", lines[len(lines)-2])
}

func TestM2AlwaysEmitted(t *testing.T) {
	lines, _ := Generate(testJob(), nil)
	require.Equal(t, "M2", lines[len(lines)-1])
}

func TestTabLiftOver(t *testing.T) {
	job := testJob()
	job.TabZ = -1
	job.TabGeometry = geom.Paths{{{X: 4, Y: -1}, {X: 6, Y: -1}, {X: 6, Y: 1}, {X: 4, Y: 1}}}

	op := Operation{
		Kind:     cam.Engrave,
		CutDepth: 4,
		Paths:    []cam.CamPath{{Path: geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
	}
	lines, warnings := Generate(job, []Operation{op})
	require.Empty(t, warnings)

	// First pass: plunge to -2, then three sub-paths with the middle one
	// lifted to tab height, each transition on the shared endpoint.
	plunge := "G1 X0.00 Y0.00 Z-2.00 F100.00"
	i := indexOf(t, lines, plunge)
	require.Equal(t, []string{
		plunge,
		"G1 X4.00 Y0.00 Z-2.00 F200.00",
		"G1 X4.00 Y0.00 Z-1.00 F200.00",
		"G1 X6.00 Y0.00 Z-1.00 F200.00",
		"G1 X6.00 Y0.00 Z-2.00 F200.00",
		"G1 X10.00 Y0.00 Z-2.00 F200.00",
	}, lines[i:i+6])

	// Second pass repeats the split at full depth.
	plunge2 := "G1 X0.00 Y0.00 Z-4.00 F100.00"
	j := indexOf(t, lines, plunge2)
	require.Equal(t, []string{
		plunge2,
		"G1 X4.00 Y0.00 Z-4.00 F200.00",
		"G1 X4.00 Y0.00 Z-1.00 F200.00",
		"G1 X6.00 Y0.00 Z-1.00 F200.00",
		"G1 X6.00 Y0.00 Z-4.00 F200.00",
		"G1 X10.00 Y0.00 Z-4.00 F200.00",
	}, lines[j:j+6])

	// Z never goes below the cut floor.
	for _, z := range zValues(t, lines) {
		require.GreaterOrEqual(t, z, -4.0)
	}
}

func TestPerforateSinglePlungePerPoint(t *testing.T) {
	job := testJob()
	var paths []cam.CamPath
	for _, p := range []geom.Point{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 9, Y: 1}} {
		paths = append(paths, cam.CamPath{Path: geom.Path{p, p}, SafeToClose: true})
	}
	op := Operation{Kind: cam.Perforate, CutDepth: 5, Paths: paths}

	lines, _ := Generate(job, []Operation{op})

	plunges, intermediates := 0, 0
	for _, line := range lines {
		if strings.Contains(line, "Z-5.00 F100.00") {
			plunges++
		}
		if strings.Contains(line, "Z-2.00") || strings.Contains(line, "Z-4.00") {
			intermediates++
		}
	}
	require.Equal(t, 3, plunges, "one full-depth plunge per point")
	require.Zero(t, intermediates, "pass layering must be bypassed")

	// Each plunge is followed by a retract at retract feed.
	for i, line := range lines {
		if strings.Contains(line, "Z-5.00") {
			require.Contains(t, lines[i+1], "Z10.00 F300.00")
		}
	}
}

func TestPassDepthClampedWithWarning(t *testing.T) {
	job := testJob()
	job.PassDepth = -1
	op := Operation{
		Kind:     cam.Engrave,
		CutDepth: 3,
		Paths:    []cam.CamPath{{Path: geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
	}
	lines, warnings := Generate(job, []Operation{op})
	require.Len(t, warnings, 1)
	require.Equal(t, PassDepthTooSmall, warnings[0].Kind)
	require.Equal(t, -1, warnings[0].Index)
	require.Equal(t, -1.0, warnings[0].Value)

	// Plotter mode: a single pass straight to full depth.
	require.Contains(t, lines, "G1 X0.00 Y0.00 Z-3.00 F100.00")
	for _, line := range lines {
		require.NotContains(t, line, "Z-1.00")
		require.NotContains(t, line, "Z-2.00")
	}
}

func TestCutDepthClampedWithWarning(t *testing.T) {
	job := testJob()
	op := Operation{
		Index:    2,
		Kind:     cam.Engrave,
		CutDepth: -3,
		Paths:    []cam.CamPath{{Path: geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
	}
	_, warnings := Generate(job, []Operation{op})
	require.Len(t, warnings, 1)
	require.Equal(t, CutDepthTooSmall, warnings[0].Kind)
	require.Equal(t, 2, warnings[0].Index)
}

func TestOriginAndScaleTransform(t *testing.T) {
	job := testJob()
	job.OffsetX = 5
	job.OffsetY = 3
	op := Operation{
		Kind:     cam.Engrave,
		CutDepth: 1,
		Paths:    []cam.CamPath{{Path: geom.Path{{X: 2, Y: 4}, {X: 6, Y: 4}}}},
	}
	lines, _ := Generate(job, []Operation{op})
	// x = 2*1 + 5, y = 4*-1 + 3: the Y axis flips from internal Y-down to
	// G-code Y-up.
	require.Contains(t, lines, "G0 X7.00 Y-1.00 F1000.00")
}

func TestJobIDComment(t *testing.T) {
	job := testJob()
	job.ID = "7e6ae2e6-9f24-4377-93aa-65e28b0013b2"
	lines, _ := Generate(job, nil)
	require.Contains(t, lines, "; job 7e6ae2e6-9f24-4377-93aa-65e28b0013b2")

	job.ID = "not-a-uuid"
	lines, _ = Generate(job, nil)
	for _, line := range lines {
		require.False(t, strings.HasPrefix(line, "; job"))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	job := testJob()
	job.TabGeometry = geom.Paths{{{X: 4, Y: -1}, {X: 6, Y: -1}, {X: 6, Y: 1}, {X: 4, Y: 1}}}
	ops := []Operation{{
		Kind:           cam.Engrave,
		CutDepth:       4,
		CutterDiameter: 2,
		Paths: []cam.CamPath{
			{Path: geom.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, SafeToClose: true},
		},
	}}
	first, _ := Generate(job, ops)
	second, _ := Generate(job, ops)
	require.Equal(t, first, second)
}

func indexOf(t *testing.T, lines []string, want string) int {
	t.Helper()
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	t.Fatalf("line %q not found in %v", want, lines)
	return -1
}
