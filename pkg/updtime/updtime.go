// Package updtime measures yesterday's update lengths from the happenings
// feed of regions that are known to update last.
package updtime

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/spyglass/pkg/fetcher"
)

// LateRegions are among the last regions to update in each cycle.
var LateRegions = []string{"Domon_Ord", "Space_Piracy_is_Legal", "From_The_End", "Waves", "Country_of_God"}

// Source is the part of the API client the probe needs.
type Source interface {
	Happenings(ctx context.Context, before int64, regions []string) ([]fetcher.Event, error)
}

// Lengths are update durations in seconds. Zero means no matching event.
type Lengths struct {
	Minor int64
	Major int64
}

type window struct {
	name   string
	start  time.Duration
	cutoff time.Duration
	kinds  []string
}

var (
	minorWindow = window{name: "minor", start: 16 * time.Hour, cutoff: 18 * time.Hour, kinds: []string{"influence"}}
	majorWindow = window{name: "major", start: 4 * time.Hour, cutoff: 6 * time.Hour, kinds: []string{"influence", "ranked"}}
)

// Probe looks at yesterday's (UTC) minor and major updates.
func Probe(ctx context.Context, src Source, now time.Time) (Lengths, error) {
	now = now.UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	minor, err := measure(ctx, src, yesterday, minorWindow)
	if err != nil {
		return Lengths{}, err
	}
	major, err := measure(ctx, src, yesterday, majorWindow)
	if err != nil {
		return Lengths{}, err
	}
	return Lengths{Minor: minor, Major: major}, nil
}

// measure returns the time from the window start to the first matching
// event before the cutoff. Events arrive newest first.
func measure(ctx context.Context, src Source, day time.Time, w window) (int64, error) {
	start := day.Add(w.start).Unix()
	cutoff := day.Add(w.cutoff).Unix()

	events, err := src.Happenings(ctx, cutoff, LateRegions)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s happenings: %w", w.name, err)
	}

	for _, ev := range events {
		for _, kind := range w.kinds {
			if strings.Contains(ev.Text, kind) {
				return ev.Timestamp - start, nil
			}
		}
	}
	return 0, nil
}
