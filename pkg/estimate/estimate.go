// Package estimate predicts when each region updates during minor and major.
//
// Every region's prediction is based on the cumulative nation count before it
// in dump order, so the first region always starts at 0:0:0. Minor times and
// overridden major times are extrapolated from that count; observed major
// times are the region's real LASTUPDATE gap from the first region.
package estimate

import (
	"errors"
	"fmt"

	"github.com/dtnitsch/spyglass/models"
)

// ErrEmptyPopulation is returned when the dump holds no nations at all, which
// would make the per-nation rate a division by zero.
var ErrEmptyPopulation = errors.New("total population is zero")

// Durations selects the update lengths. A nil Major means the major length is
// observed from the dump.
type Durations struct {
	Minor int64
	Major *int64
}

// Cycle describes one update pass.
type Cycle struct {
	Seconds       int64
	SecsPerNation float64
	NationsPerSec float64
}

// Result holds per-region offsets (seconds since update start) in dump order
// plus the aggregate figures for both cycles.
type Result struct {
	// Cumulative has len(regions)+1 entries; Cumulative[i] is the nation count
	// processed before region i and the last entry is the total.
	Cumulative    []int64
	Total         int64
	Minor         Cycle
	Major         Cycle
	MajorObserved bool
	MinorOffsets  []int64
	MajorOffsets  []int64
}

// Cumulative builds the prefix sums of NumNations, starting at 0.
func Cumulative(regions []models.Region) []int64 {
	c := make([]int64, len(regions)+1)
	for i, r := range regions {
		c[i+1] = c[i] + r.NumNations
	}
	return c
}

// Estimate computes minor and major offsets for every region.
func Estimate(regions []models.Region, d Durations) (*Result, error) {
	cumul := Cumulative(regions)
	total := cumul[len(cumul)-1]
	if total == 0 {
		return nil, fmt.Errorf("%w: %d regions", ErrEmptyPopulation, len(regions))
	}

	res := &Result{
		Cumulative:   cumul,
		Total:        total,
		Minor:        newCycle(d.Minor, total),
		MinorOffsets: make([]int64, len(regions)),
		MajorOffsets: make([]int64, len(regions)),
	}

	majorSeconds := int64(0)
	if d.Major != nil {
		majorSeconds = *d.Major
	} else {
		res.MajorObserved = true
		majorSeconds = regions[len(regions)-1].LastUpdate - regions[0].LastUpdate
	}
	res.Major = newCycle(majorSeconds, total)

	for i := range regions {
		res.MinorOffsets[i] = offset(cumul[i], res.Minor.SecsPerNation)
		if res.MajorObserved {
			// Not clamped: a dump that is out of LASTUPDATE order yields
			// negative offsets here.
			res.MajorOffsets[i] = regions[i].LastUpdate - regions[0].LastUpdate
		} else {
			res.MajorOffsets[i] = offset(cumul[i], res.Major.SecsPerNation)
		}
	}

	return res, nil
}

func newCycle(seconds, total int64) Cycle {
	c := Cycle{
		Seconds:       seconds,
		SecsPerNation: float64(seconds) / float64(total),
	}
	if c.SecsPerNation != 0 {
		c.NationsPerSec = 1 / c.SecsPerNation
	}
	return c
}

// offset truncates toward zero, matching the historical sheets.
func offset(cumulative int64, rate float64) int64 {
	return int64(float64(cumulative) * rate)
}

// FormatHMS renders seconds as H:M:S without zero padding. Minutes and
// seconds use floor division and modulo, so negative inputs keep the
// historical shape (-70 renders as -1:58:50).
func FormatHMS(seconds int64) string {
	secs := floorMod(seconds, 60)
	mins := floorMod(floorDiv(seconds, 60), 60)
	hours := floorDiv(seconds, 3600)
	return fmt.Sprintf("%d:%d:%d", hours, mins, secs)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
