package picks

import (
	"fmt"
	"strings"

	"match-poster-bot/internal/types"
)

const divider = "━━━━━━━━━━━━━━━"

// FetchErrorNotice is the substitute message published when the feed could
// not be fetched. The channel never sees the underlying error.
const FetchErrorNotice = "⚽ Error fetching match data. Please try again later. ⚽"

// SelfTestNotice is sent on startup when the debug flag is set.
const SelfTestNotice = "🤖 Match poster self-test: configuration looks good."

// FormatMatch renders one pick as a fixed Markdown block. The "-" result
// sentinel renders as "Not Played" and an empty outcome as "Pending".
func FormatMatch(m types.MatchRecord, tzLabel string, includeLogos bool) string {
	result := m.Result
	if result == types.ResultPending {
		result = "Not Played"
	}
	outcome := "Pending"
	if m.Outcome != "" {
		outcome = capitalize(m.Outcome)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 **%s (%s)** 🏆\n", m.League, m.Country)
	fmt.Fprintf(&b, "⏰ **Time**: %s (%s)\n", m.Time, tzLabel)
	fmt.Fprintf(&b, "⚽ **%s** 🆚 **%s**\n", m.HomeTeam, m.AwayTeam)
	fmt.Fprintf(&b, "🎯 **Pick**: %s\n", m.Pick)
	fmt.Fprintf(&b, "📊 **Result**: %s\n", result)
	fmt.Fprintf(&b, "✅ **Outcome**: %s\n", outcome)
	if includeLogos && m.HomeLogo != "" && m.AwayLogo != "" {
		fmt.Fprintf(&b, "\n[Home Team Logo](%s) | [Away Team Logo](%s) | [League Logo](%s)\n",
			m.HomeLogo, m.AwayLogo, m.LeagueLogo)
	}
	b.WriteString(divider)
	return b.String()
}

// NoMatchesNotice is the fixed message for a day with no scheduled picks.
func NoMatchesNotice(date string) string {
	return fmt.Sprintf("⚽ No matches scheduled for today (%s). Check back tomorrow! ⚽", date)
}

// BuildMessage assembles the full channel message: optional congratulatory
// annotation, header or no-matches notice, formatted blocks, and the
// optional "more picks" link.
func BuildMessage(selected []types.MatchRecord, date, tzLabel, annotation, morePicksURL string, includeLogos bool) string {
	var b strings.Builder
	if annotation != "" {
		b.WriteString(annotation)
		b.WriteString("\n\n")
	}
	if len(selected) == 0 {
		b.WriteString(NoMatchesNotice(date))
	} else {
		fmt.Fprintf(&b, "⚽ **Today's Picks (%s)** ⚽\n\n", date)
		blocks := make([]string, 0, len(selected))
		for _, m := range selected {
			blocks = append(blocks, FormatMatch(m, tzLabel, includeLogos))
		}
		b.WriteString(strings.Join(blocks, "\n\n"))
	}
	if morePicksURL != "" {
		fmt.Fprintf(&b, "\n\n👉 [More picks](%s)", morePicksURL)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
