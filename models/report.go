package models

// Style is the highlight applied to a row's name and link cells.
type Style int

const (
	StyleNone Style = iota
	// StyleExecUnlocked marks an unlocked region with an executive delegate.
	StyleExecUnlocked
	// StyleOwnerlessUnlocked marks an unlocked region without a founder.
	StyleOwnerlessUnlocked
	// StyleLocked marks a passworded region.
	StyleLocked
)

func (s Style) String() string {
	switch s {
	case StyleExecUnlocked:
		return "exec_unlocked"
	case StyleOwnerlessUnlocked:
		return "ownerless_unlocked"
	case StyleLocked:
		return "locked"
	default:
		return "none"
	}
}

// Fill is the background colour a sink uses for a style.
type Fill string

const (
	FillNone   Fill = ""
	FillRed    Fill = "FF0000"
	FillGreen  Fill = "00FF00"
	FillYellow Fill = "FFFF00"
)

// Fill maps a style to its background colour.
func (s Style) Fill() Fill {
	switch s {
	case StyleExecUnlocked:
		return FillYellow
	case StyleOwnerlessUnlocked:
		return FillGreen
	case StyleLocked:
		return FillRed
	default:
		return FillNone
	}
}

// Tag is the classification result for one region.
type Tag struct {
	Unlocked     bool
	Ownerless    bool
	ExecUnlocked bool
	Suffix       string // "", "~" or "*"
	Style        Style
}

// Row is one rendered line of the timesheet.
type Row struct {
	Name          string `yaml:"name"`
	Link          string `yaml:"link"`
	Nations       int64  `yaml:"nations"`
	TotalNations  int64  `yaml:"total_nations"`
	MinorUpdate   string `yaml:"minor_update"`
	MajorUpdate   string `yaml:"major_update"`
	DelegateVotes int64  `yaml:"delegate_votes"`
	DelegateEndos int64  `yaml:"delegate_endos"`
	Embassies     string `yaml:"embassies,omitempty"`
	WFE           string `yaml:"wfe,omitempty"`
	Officers      string `yaml:"officers,omitempty"`
	Style         Style  `yaml:"-"`
	Highlight     string `yaml:"highlight,omitempty"`
	NoDelegate    bool   `yaml:"no_delegate,omitempty"`
}

// Summary is the World Data block of the timesheet.
type Summary struct {
	Nations            int64   `yaml:"nations"`
	MajorSeconds       int64   `yaml:"last_major"`
	MajorSecsPerNation float64 `yaml:"major_secs_per_nation"`
	MajorNationsPerSec float64 `yaml:"major_nations_per_sec"`
	MinorSeconds       int64   `yaml:"last_minor"`
	MinorSecsPerNation float64 `yaml:"minor_secs_per_nation"`
	MinorNationsPerSec float64 `yaml:"minor_nations_per_sec"`
	MajorObserved      bool    `yaml:"major_observed"`
	Version            string  `yaml:"version"`
	DateGenerated      string  `yaml:"date_generated"`
}

// Report is the assembled timesheet handed to a sink.
type Report struct {
	Rows      []Row   `yaml:"rows"`
	Summary   Summary `yaml:"summary"`
	Embassies bool    `yaml:"-"`
	WFE       bool    `yaml:"-"`
	Officers  bool    `yaml:"-"`
}
