package types

// ResultPending is the upstream sentinel for a match that has not been played.
const ResultPending = "-"

// MatchRecord is one fixture entry as delivered by the picks feed. Records
// are immutable values scoped to a single cycle; nothing is persisted.
type MatchRecord struct {
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	League     string `json:"league"`
	Country    string `json:"country"`
	Time       string `json:"m_time"`
	Pick       string `json:"pick"`
	Result     string `json:"result"`
	Outcome    string `json:"outcome"`
	Date       string `json:"m_date"`
	HomeLogo   string `json:"h_logo_path,omitempty"`
	AwayLogo   string `json:"a_logo_path,omitempty"`
	LeagueLogo string `json:"league_logo,omitempty"`
}

// Completed reports whether the record's outcome has been decided.
func (m MatchRecord) Completed() bool { return m.Outcome != "" }

// Feed is the top-level envelope of the picks endpoint. A missing
// server_response key decodes to a nil slice, never an error.
type Feed struct {
	ServerResponse []MatchRecord `json:"server_response"`
}
