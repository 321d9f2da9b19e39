package runs

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/spyglass/pkg/db"
)

func TestPrintRuns(t *testing.T) {
	started := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		runs []db.Run
		want []string
	}{
		{
			name: "empty ledger",
			want: []string{"No runs found"},
		},
		{
			name: "success and failure",
			runs: []db.Run{
				{
					RunID: "run-1", StartedAt: started, Status: db.StatusSuccess, Nation: "testlandia",
					RegionCount: 3, TotalNations: 60, MajorSeconds: 90, MajorMode: db.ModeObserved,
					DumpBytes: 2048, OutputPath: "SpyglassSheet2026-3-5.xlsx",
				},
				{
					RunID: "run-2", StartedAt: started, Status: db.StatusFailed, Nation: "nowhere",
					Error: "invalid nation",
				},
			},
			want: []string{"run-1", "90s/observed", "2.0 kB", "SpyglassSheet2026-3-5.xlsx", "run-2", "cached", "Error: invalid nation", "Total: 2 runs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printRuns(&buf, tt.runs)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}
