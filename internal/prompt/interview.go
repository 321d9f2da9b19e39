package prompt

import (
	"fmt"

	"github.com/dtnitsch/spyglass/models"
)

// Answers is the outcome of an interactive session.
type Answers struct {
	Nation    string
	Embassies bool // also covers WFE
	Officers  bool

	// Minor and Major are only meaningful when Manual is set.
	Manual bool
	Minor  int64
	Major  int64

	Redownload bool
}

// Interview asks the interactive-mode questions in order. The re-download
// question is only asked when a cached dump exists.
func Interview(a Asker, dumpExists bool) (Answers, error) {
	got, err := a.Ask([]Question{
		{Key: "nation", Prompt: "Nation Name:"},
		{Key: "embassies", Prompt: "Include region embassies? (y/n, defaults to y)", Options: yesNo},
		{Key: "officers", Prompt: "Include regional officers? (y/n, defaults to y)", Options: yesNo},
		{Key: "manual", Prompt: "Do you want to manually specify update lengths? (y/n, defaults to n)", Options: yesNo},
	})
	if err != nil {
		return Answers{}, err
	}

	ans := Answers{
		Nation:     got["nation"],
		Embassies:  YesNo(got["embassies"], true),
		Officers:   YesNo(got["officers"], true),
		Manual:     YesNo(got["manual"], false),
		Minor:      models.DefaultMinorSeconds,
		Major:      models.DefaultMajorSeconds,
		Redownload: true,
	}

	if ans.Manual {
		lengths, err := a.Ask([]Question{
			{Key: "minor", Prompt: fmt.Sprintf("Minor Time, seconds (%d):", models.DefaultMinorSeconds)},
			{Key: "major", Prompt: fmt.Sprintf("Major Time, seconds (%d):", models.DefaultMajorSeconds)},
		})
		if err != nil {
			return Answers{}, err
		}
		ans.Minor = Seconds(lengths["minor"], models.DefaultMinorSeconds)
		ans.Major = Seconds(lengths["major"], models.DefaultMajorSeconds)
	}

	if dumpExists {
		dl, err := a.Ask([]Question{
			{Key: "redownload", Prompt: "Existing data dump found. Do you want to re-download the latest dump? (y/n, defaults to y)", Options: yesNo},
		})
		if err != nil {
			return Answers{}, err
		}
		ans.Redownload = YesNo(dl["redownload"], true)
	}

	return ans, nil
}
