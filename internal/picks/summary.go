package picks

import (
	"fmt"
	"strings"

	"match-poster-bot/internal/types"
)

// Summarize computes yesterday's win rate over completed records and returns
// a congratulatory annotation, or "" when there is nothing to celebrate.
// Zero completed records means no annotation, never a division fault.
// The threshold is inclusive; 75 is the canonical value.
func Summarize(yesterday []types.MatchRecord, thresholdPct float64) string {
	completed, won := 0, 0
	for _, r := range yesterday {
		if !r.Completed() {
			continue
		}
		completed++
		if strings.EqualFold(r.Outcome, "win") {
			won++
		}
	}
	if completed == 0 {
		return ""
	}
	if won == completed {
		return fmt.Sprintf("🔥 **PERFECT DAY!** All %d of yesterday's picks won! 💯", completed)
	}
	rate := float64(won) / float64(completed) * 100
	if rate >= thresholdPct {
		return fmt.Sprintf("🎉 **Amazing day yesterday!** We won %d/%d picks (%.2f%%) 🎉", won, completed, rate)
	}
	return ""
}
