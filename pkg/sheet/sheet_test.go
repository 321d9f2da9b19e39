package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/spyglass/models"
	"github.com/dtnitsch/spyglass/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleReport(full bool) *models.Report {
	rows := []models.Row{
		{
			Name: "The Pacific~", Link: `=HYPERLINK("https://www.nationstates.net/region=The_Pacific")`,
			Nations: 10, TotalNations: 0, MinorUpdate: "0:0:0", MajorUpdate: "0:0:0",
			DelegateVotes: 5, DelegateEndos: 4, Style: models.StyleExecUnlocked, Highlight: "exec_unlocked",
		},
		{
			Name: "Lazarus*", Link: `=HYPERLINK("https://www.nationstates.net/region=Lazarus")`,
			Nations: 20, TotalNations: 10, MinorUpdate: "0:0:10", MajorUpdate: "0:0:20",
			DelegateVotes: 0, DelegateEndos: -1, NoDelegate: true, Style: models.StyleLocked, Highlight: "locked",
		},
		{
			Name: "Open Plain", Link: `=HYPERLINK("https://www.nationstates.net/region=Open_Plain")`,
			Nations: 30, TotalNations: 30, MinorUpdate: "0:0:30", MajorUpdate: "0:1:0",
			DelegateVotes: 1, DelegateEndos: 0,
		},
	}
	if full {
		rows[0].Embassies = "Lazarus,Osiris"
		rows[0].WFE = "'=SUM(A1)"
		rows[0].Officers = " alpha : Minister, "
	}
	return &models.Report{
		Rows: rows,
		Summary: models.Summary{
			Nations: 60, MajorSeconds: 120, MajorSecsPerNation: 2, MajorNationsPerSec: 0.5,
			MinorSeconds: 60, MinorSecsPerNation: 1, MinorNationsPerSec: 1,
			MajorObserved: true, Version: "2.1", DateGenerated: "2026-3-5",
		},
		Embassies: full,
		WFE:       full,
		Officers:  full,
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Sink
	}{
		{path: "SpyglassSheet2026-3-5.xlsx", want: XLSX{}},
		{path: "out.YAML", want: YAML{}},
		{path: "out.yml", want: YAML{}},
		{path: "noext", want: XLSX{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.IsType(t, tt.want, ForPath(tt.path))
		})
	}
}

func openRendered(t *testing.T, rep *models.Report) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, XLSX{}.Render(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(SheetName, ref)
	require.NoError(t, err)
	return v
}

func TestXLSX_Render(t *testing.T) {
	f := openRendered(t, sampleReport(true))

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	headers := map[string]string{
		"A1": "Regions", "B1": "Region Link", "C1": "# Nations", "D1": "Tot. Nations",
		"E1": "Minor Upd. (est)", "F1": "Major Upd. (true)", "G1": "Del. Votes", "H1": "Del. Endos",
		"I1": "Embassies", "J1": "WFE", "K1": "Officers",
	}
	for ref, want := range headers {
		assert.Equal(t, want, cell(t, f, ref), ref)
	}

	assert.Equal(t, "The Pacific~", cell(t, f, "A2"))
	assert.Equal(t, "10", cell(t, f, "C2"))
	assert.Equal(t, "0", cell(t, f, "D2"))
	assert.Equal(t, "0:0:10", cell(t, f, "E3"))
	assert.Equal(t, "0:1:0", cell(t, f, "F4"))
	assert.Equal(t, "-1", cell(t, f, "H3"))
	assert.Equal(t, "Lazarus,Osiris", cell(t, f, "I2"))
	assert.Equal(t, "'=SUM(A1)", cell(t, f, "J2"))
	assert.Equal(t, " alpha : Minister, ", cell(t, f, "K2"))
	assert.Equal(t, " ", cell(t, f, "L2"))

	formula, err := f.GetCellFormula(SheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, `HYPERLINK("https://www.nationstates.net/region=Lazarus")`, formula)

	width, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, 45.0, width)
}

func TestXLSX_SummaryBlock(t *testing.T) {
	f := openRendered(t, sampleReport(false))

	want := map[string]string{
		"M1": "World ", "N1": "Data",
		"M2": "Nations", "N2": "60",
		"M3": "Last Major", "N3": "120",
		"M6": "Last Minor", "N6": "60",
		"M9": "", "N9": "",
		"M10": "Spyglass Version", "N10": "2.1",
		"M11": "Date Generated", "N11": "2026-3-5",
	}
	for ref, v := range want {
		assert.Equal(t, v, cell(t, f, ref), ref)
	}

	// summary rows past the data rows carry no region cells
	assert.Empty(t, cell(t, f, "A6"))
	assert.Empty(t, cell(t, f, "L6"))
}

func TestXLSX_MinimizedOmitsOptionalColumns(t *testing.T) {
	rep := sampleReport(false)
	rep.Summary.MajorObserved = false
	f := openRendered(t, rep)

	assert.Equal(t, "Major Upd. (est)", cell(t, f, "F1"))
	for _, ref := range []string{"I1", "J1", "K1", "I2", "J2", "K2"} {
		assert.Empty(t, cell(t, f, ref), ref)
	}
}

func TestXLSX_Fills(t *testing.T) {
	f := openRendered(t, sampleReport(false))

	style := func(ref string) int {
		id, err := f.GetCellStyle(SheetName, ref)
		require.NoError(t, err)
		return id
	}

	execFill, lockedFill, plain := style("A2"), style("A3"), style("A4")
	assert.NotZero(t, execFill)
	assert.NotZero(t, lockedFill)
	assert.NotEqual(t, execFill, lockedFill)
	assert.Zero(t, plain)

	assert.Equal(t, execFill, style("B2"))
	assert.Equal(t, lockedFill, style("H3"), "delegate-less endorsements share the red fill")
	assert.Zero(t, style("H2"))
}

func TestYAML_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML{}.Render(&buf, sampleReport(false)))

	var got struct {
		Rows []struct {
			Name      string `yaml:"name"`
			Highlight string `yaml:"highlight"`
			Endos     int64  `yaml:"delegate_endos"`
			WFE       string `yaml:"wfe"`
		} `yaml:"rows"`
		Summary struct {
			Nations int64  `yaml:"nations"`
			Date    string `yaml:"date_generated"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got.Rows, 3)
	assert.Equal(t, "exec_unlocked", got.Rows[0].Highlight)
	assert.Equal(t, "locked", got.Rows[1].Highlight)
	assert.Equal(t, int64(-1), got.Rows[1].Endos)
	assert.Empty(t, got.Rows[2].Highlight)
	assert.Empty(t, got.Rows[0].WFE)
	assert.Equal(t, int64(60), got.Summary.Nations)
	assert.Equal(t, "2026-3-5", got.Summary.Date)
	assert.NotContains(t, buf.String(), "style")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s := &storage.Storage{}

	xlsxPath := filepath.Join(dir, "sheet.xlsx")
	require.NoError(t, Save(s, xlsxPath, sampleReport(true)))
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	yamlPath := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, Save(s, yamlPath, sampleReport(true)))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "The Pacific~")
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sheet.xlsx")
	err := Save(&storage.Storage{}, path, sampleReport(false))
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
