package source

import (
	"time"

	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/interfaces"
	"match-poster-bot/internal/store"
)

// New selects the match source for the configured data_source mode.
func New(cfg *store.Config, clock clockwork.Clock, loc *time.Location) interfaces.MatchSource {
	if cfg.DataSource == "LIVE" {
		return NewFeedSource(cfg.Feed)
	}
	return NewStaticSource(clock, loc)
}
