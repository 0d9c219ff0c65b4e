package picks

import (
	"math/rand"

	"match-poster-bot/internal/types"
)

// Sample returns min(n, len(records)) records chosen uniformly without
// replacement. The rand source is injected so callers fix the seed in tests.
func Sample(records []types.MatchRecord, n int, rng *rand.Rand) []types.MatchRecord {
	if len(records) == 0 || n <= 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]types.MatchRecord, 0, n)
	for _, i := range rng.Perm(len(records))[:n] {
		out = append(out, records[i])
	}
	return out
}
