package source

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/picks"
	"match-poster-bot/internal/types"
)

// StaticSource serves a fixed sample dataset through the same contract as
// the live feed, for testing and for keeping the pipeline operable during
// outages. Dates are rewritten relative to the clock so yesterday's records
// always carry outcomes and today's stay pending.
type StaticSource struct {
	clock clockwork.Clock
	loc   *time.Location
}

func NewStaticSource(clock clockwork.Clock, loc *time.Location) *StaticSource {
	return &StaticSource{clock: clock, loc: loc}
}

func (s *StaticSource) Fetch(ctx context.Context) ([]types.MatchRecord, error) {
	now := s.clock.Now()
	today := picks.Today(now, s.loc)
	yesterday := picks.Yesterday(now, s.loc)

	return []types.MatchRecord{
		{HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League", Country: "England",
			Time: "19:00", Pick: "Over 2.5", Result: "3-1", Outcome: "win", Date: yesterday},
		{HomeTeam: "Gor Mahia", AwayTeam: "AFC Leopards", League: "Premier League", Country: "Kenya",
			Time: "16:00", Pick: "1", Result: "2-0", Outcome: "win", Date: yesterday},
		{HomeTeam: "Juventus", AwayTeam: "Inter", League: "Serie A", Country: "Italy",
			Time: "21:45", Pick: "X", Result: "1-2", Outcome: "lose", Date: yesterday},
		{HomeTeam: "Barcelona", AwayTeam: "Sevilla", League: "La Liga", Country: "Spain",
			Time: "22:00", Pick: "1", Result: "4-0", Outcome: "win", Date: yesterday},
		{HomeTeam: "Bayern Munich", AwayTeam: "Dortmund", League: "Bundesliga", Country: "Germany",
			Time: "18:30", Pick: "Over 3.5", Result: types.ResultPending, Date: today},
		{HomeTeam: "PSG", AwayTeam: "Marseille", League: "Ligue 1", Country: "France",
			Time: "20:45", Pick: "1", Result: types.ResultPending, Date: today},
		{HomeTeam: "Ajax", AwayTeam: "PSV", League: "Eredivisie", Country: "Netherlands",
			Time: "17:00", Pick: "BTTS", Result: types.ResultPending, Date: today},
		{HomeTeam: "Simba SC", AwayTeam: "Young Africans", League: "Premier League", Country: "Tanzania",
			Time: "16:00", Pick: "1X", Result: types.ResultPending, Date: today},
	}, nil
}
