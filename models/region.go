package models

// Region is one REGION element of the daily dump.
// Dump order is the order regions are processed during an update.
type Region struct {
	Name          string
	NumNations    int64
	DelegateVotes int64
	DelegateAuth  string
	LastUpdate    int64
	Factbook      string
	Embassies     []string
	Officers      []Officer
}

// Officer is a regional officer entry.
type Officer struct {
	Nation string
	Office string
}

// Executive reports whether the delegate holds executive authority.
func (r Region) Executive() bool {
	return len(r.DelegateAuth) > 0 && r.DelegateAuth[0] == 'X'
}
