package picks

import "match-poster-bot/internal/types"

// ByDate returns the records whose date field equals date exactly. No range
// comparison and no parsing: a malformed date simply never matches.
func ByDate(records []types.MatchRecord, date string) []types.MatchRecord {
	var out []types.MatchRecord
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}
