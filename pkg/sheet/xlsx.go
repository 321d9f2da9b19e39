package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/spyglass/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Spyglass Timesheet"
	tabColor  = "FFB1B1"

	// columns are zero-based; A..N
	colOfficers = 10
	colSpacer   = 11
	colLabel    = 12
	colValue    = 13
	rowWidth    = 14
)

// XLSX writes the report as a single-sheet workbook with per-row fills and
// the World Data block beside the rows.
type XLSX struct{}

type styles struct {
	fills map[models.Fill]int
	right int
}

func (XLSX) Render(w io.Writer, rep *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}
	color := tabColor
	if err := f.SetSheetProps(SheetName, &excelize.SheetPropsOptions{TabColorRGB: &color}); err != nil {
		return fmt.Errorf("error setting tab colour: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("error opening stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, 1, 45); err != nil {
		return fmt.Errorf("error setting column width: %w", err)
	}

	summary := summaryCells(rep.Summary)
	total := max(len(rep.Rows)+1, len(summary))
	for i := 0; i < total; i++ {
		var cells []interface{}
		switch {
		case i == 0:
			cells = headerCells(rep, st)
		case i-1 < len(rep.Rows):
			cells = rowCells(rep.Rows[i-1], rep, st)
		}
		if i < len(summary) && summary[i] != nil {
			cells = pad(cells)
			cells[colLabel] = summary[i][0]
			cells[colValue] = summary[i][1]
		}
		if len(cells) == 0 {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(ref, cells); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("error flushing sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (*styles, error) {
	st := &styles{fills: make(map[models.Fill]int)}
	for _, fill := range []models.Fill{models.FillRed, models.FillGreen, models.FillYellow} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{string(fill)}},
		})
		if err != nil {
			return nil, fmt.Errorf("error creating %s fill: %w", fill, err)
		}
		st.fills[fill] = id
	}

	id, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "right"}})
	if err != nil {
		return nil, fmt.Errorf("error creating alignment style: %w", err)
	}
	st.right = id
	return st, nil
}

func headerCells(rep *models.Report, st *styles) []interface{} {
	major := "Major Upd. (est)"
	if rep.Summary.MajorObserved {
		major = "Major Upd. (true)"
	}
	cells := pad([]interface{}{
		"Regions", "Region Link", "# Nations", "Tot. Nations",
		"Minor Upd. (est)", major, "Del. Votes", "Del. Endos",
	})
	if rep.Embassies {
		cells[8] = "Embassies"
	}
	if rep.WFE {
		cells[9] = excelize.Cell{Value: "WFE", StyleID: st.right}
	}
	if rep.Officers {
		cells[colOfficers] = "Officers"
	}
	return cells
}

func rowCells(row models.Row, rep *models.Report, st *styles) []interface{} {
	fill := st.fills[row.Style.Fill()]

	endos := excelize.Cell{Value: row.DelegateEndos}
	if row.NoDelegate {
		endos.StyleID = st.fills[models.FillRed]
	}

	cells := pad([]interface{}{
		excelize.Cell{Value: row.Name, StyleID: fill},
		excelize.Cell{Formula: strings.TrimPrefix(row.Link, "="), StyleID: fill},
		row.Nations,
		row.TotalNations,
		excelize.Cell{Value: row.MinorUpdate, StyleID: st.right},
		excelize.Cell{Value: row.MajorUpdate, StyleID: st.right},
		row.DelegateVotes,
		endos,
	})
	if rep.Embassies {
		cells[8] = row.Embassies
	}
	if rep.WFE {
		cells[9] = row.WFE
	}
	if rep.Officers {
		cells[colOfficers] = row.Officers
	}
	cells[colSpacer] = " "
	return cells
}

// summaryCells lays out the World Data block, one label/value pair per row.
func summaryCells(s models.Summary) [][]interface{} {
	return [][]interface{}{
		{"World ", "Data"},
		{"Nations", s.Nations},
		{"Last Major", s.MajorSeconds},
		{"Secs/Nation", s.MajorSecsPerNation},
		{"Nations/Sec", s.MajorNationsPerSec},
		{"Last Minor", s.MinorSeconds},
		{"Secs/Nation", s.MinorSecsPerNation},
		{"Nations/Sec", s.MinorNationsPerSec},
		nil,
		{"Spyglass Version", s.Version},
		{"Date Generated", s.DateGenerated},
	}
}

func pad(cells []interface{}) []interface{} {
	if len(cells) >= rowWidth {
		return cells
	}
	out := make([]interface{}, rowWidth)
	copy(out, cells)
	return out
}
