// Package gcode is the G-code emitter: it turns a Job descriptor and a
// list of compiled operations (package cam's output) into the ordered
// sequence of RS-274/NGC lines a three-axis router executes. It owns pass
// layering, ramp and plunge entries, tab lift-over (via package tabs), feed
// selection, unit/origin transforms and numeric formatting. It performs no
// I/O: Generate returns a slice of strings for the host to write wherever
// it likes.
package gcode

import (
	"github.com/google/uuid"

	"github.com/opencam/camcore/geom"
)

// Units selects the G-code unit directive emitted in the preamble.
type Units uint8

const (
	Millimeters Units = iota
	Inches
)

func (u Units) String() string {
	if u == Inches {
		return "inch"
	}
	return "mm"
}

// Job carries every parameter the emitter needs that isn't attached to an
// individual operation: Z levels, feeds, the coordinate transform from
// internal units to G-code units, and the tab geometry shared by every
// operation in the job.
type Job struct {
	Units Units

	TopZ, BotZ, SafeZ float64
	PassDepth         float64
	PlungeFeed        float64
	CutFeed           float64
	RapidFeed         float64
	RetractFeed       float64

	// Decimal is the number of fractional digits in emitted coordinates.
	// A negative value selects the unit-appropriate default: 2 for mm, 3
	// for inch.
	Decimal int

	OffsetX, OffsetY               float64
	XScale, YScale, ZScale         float64
	ReturnTo00                     bool
	TabGeometry                    geom.Paths
	TabZ                           float64

	// ID, when a valid UUID, is emitted as a traceability comment in the
	// preamble. It is never generated internally - Generate is a pure
	// function of its inputs, and a freshly minted ID would break the
	// guarantee that identical inputs produce byte-identical output.
	ID string
}

func (j Job) decimalPlaces() int {
	if j.Decimal >= 0 {
		return j.Decimal
	}
	if j.Units == Inches {
		return 3
	}
	return 2
}

// validJobID reports whether j.ID is both non-empty and a syntactically
// valid UUID; an invalid ID is silently ignored rather than rejected, since
// it's a diagnostic aid, not an input the emitter depends on.
func (j Job) validJobID() (string, bool) {
	if j.ID == "" {
		return "", false
	}
	if _, err := uuid.Parse(j.ID); err != nil {
		return "", false
	}
	return j.ID, true
}
