// Package report merges parsed regions, tags and estimates into sheet rows.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/estimate"
)

const regionURL = "https://www.nationstates.net/region="

// Options controls the optional columns and summary metadata.
type Options struct {
	Embassies bool
	WFE       bool
	Officers  bool
	Version   string
	Generated time.Time
}

// Assemble builds one row per region in dump order plus the summary block.
// It performs no I/O.
func Assemble(regions []models.Region, tags []models.Tag, est *estimate.Result, opts Options) (*models.Report, error) {
	if len(tags) != len(regions) {
		return nil, fmt.Errorf("tag count %d does not match region count %d", len(tags), len(regions))
	}
	if est == nil || len(est.MinorOffsets) != len(regions) || len(est.MajorOffsets) != len(regions) {
		return nil, fmt.Errorf("estimate does not cover %d regions", len(regions))
	}

	rep := &models.Report{
		Rows:      make([]models.Row, len(regions)),
		Summary:   summarize(est, opts),
		Embassies: opts.Embassies,
		WFE:       opts.WFE,
		Officers:  opts.Officers,
	}

	for i, r := range regions {
		tag := tags[i]
		row := models.Row{
			Name:          r.Name + tag.Suffix,
			Link:          RegionLink(r.Name),
			Nations:       r.NumNations,
			TotalNations:  est.Cumulative[i],
			MinorUpdate:   estimate.FormatHMS(est.MinorOffsets[i]),
			MajorUpdate:   estimate.FormatHMS(est.MajorOffsets[i]),
			DelegateVotes: r.DelegateVotes,
			// votes minus the delegate's own; -1 flags a region without a delegate
			DelegateEndos: r.DelegateVotes - 1,
			NoDelegate:    r.DelegateVotes == 0,
			Style:         tag.Style,
		}
		if tag.Style != models.StyleNone {
			row.Highlight = tag.Style.String()
		}
		if opts.Embassies {
			row.Embassies = strings.Join(r.Embassies, ",")
		}
		if opts.WFE {
			row.WFE = EscapeFormula(r.Factbook)
		}
		if opts.Officers {
			row.Officers = FormatOfficers(r.Officers)
		}
		rep.Rows[i] = row
	}

	return rep, nil
}

func summarize(est *estimate.Result, opts Options) models.Summary {
	gen := opts.Generated
	return models.Summary{
		Nations:            est.Total,
		MajorSeconds:       est.Major.Seconds,
		MajorSecsPerNation: est.Major.SecsPerNation,
		MajorNationsPerSec: est.Major.NationsPerSec,
		MinorSeconds:       est.Minor.Seconds,
		MinorSecsPerNation: est.Minor.SecsPerNation,
		MinorNationsPerSec: est.Minor.NationsPerSec,
		MajorObserved:      est.MajorObserved,
		Version:            opts.Version,
		DateGenerated:      fmt.Sprintf("%d-%d-%d", gen.Year(), int(gen.Month()), gen.Day()),
	}
}

// RegionLink returns a spreadsheet HYPERLINK formula for the region page.
func RegionLink(name string) string {
	link := fmt.Sprintf(`=HYPERLINK("%s%s")`, regionURL, name)
	return strings.ReplaceAll(link, " ", "_")
}

// EscapeFormula stops spreadsheet apps from evaluating text that starts
// like a formula.
func EscapeFormula(text string) string {
	if text == "" {
		return text
	}
	switch text[0] {
	case '=', '+', '-', '@':
		return "'" + text
	}
	return text
}

// FormatOfficers renders officers as " nation : office, " entries.
// The leading space keeps long WFE text from spilling into the cell.
func FormatOfficers(officers []models.Officer) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for _, o := range officers {
		sb.WriteString(o.Nation)
		sb.WriteString(" : ")
		sb.WriteString(o.Office)
		sb.WriteString(", ")
	}
	return sb.String()
}
