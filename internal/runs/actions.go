package runs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/spyglass/pkg/db"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to open database: %v", err), 2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	printRuns(os.Stdout, runs)
	return nil
}

func printRuns(w io.Writer, runs []db.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	// Print table header
	fmt.Fprintf(w, "%-36s %-20s %-8s %-20s %-8s %-9s %-10s %-9s %s\n",
		"ID", "Started", "Status", "Nation", "Regions", "Nations", "Major", "Dump", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 140))

	for _, r := range runs {
		major := r.MajorMode
		if r.MajorSeconds > 0 {
			major = fmt.Sprintf("%ds/%s", r.MajorSeconds, r.MajorMode)
		}
		dump := "cached"
		if r.DumpBytes > 0 {
			dump = humanize.Bytes(uint64(r.DumpBytes))
		}
		fmt.Fprintf(w, "%-36s %-20s %-8s %-20s %-8d %-9d %-10s %-9s %s\n",
			r.RunID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status,
			r.Nation,
			r.RegionCount,
			r.TotalNations,
			major,
			dump,
			r.OutputPath,
		)
		if r.Error != "" {
			fmt.Fprintf(w, "    Error: %s\n", r.Error)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
}
