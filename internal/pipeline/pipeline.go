package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/interfaces"
	"match-poster-bot/internal/logger"
	"match-poster-bot/internal/picks"
	"match-poster-bot/internal/store"
)

// Pipeline runs one fetch→filter→summarize→select→format→publish cycle.
// Every failure it knows how to handle stays inside the cycle; only faults
// it cannot contain bubble up to the supervisor.
type Pipeline struct {
	source    interfaces.MatchSource
	publisher interfaces.Publisher
	cfg       store.DigestConfig
	clock     clockwork.Clock
	loc       *time.Location
	rng       *rand.Rand
}

// New wires a pipeline. A nil rng gets a time-seeded source; tests inject a
// fixed seed for deterministic selection.
func New(source interfaces.MatchSource, publisher interfaces.Publisher, cfg store.DigestConfig, clock clockwork.Clock, rng *rand.Rand) *Pipeline {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Pipeline{
		source:    source,
		publisher: publisher,
		cfg:       cfg,
		clock:     clock,
		loc:       picks.LoadLocation(cfg.Timezone),
		rng:       rng,
	}
}

// Run executes a single cycle. Today/yesterday are recomputed from the wall
// clock on every call; nothing carries over between cycles.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx, span := logger.StartSpan(ctx, "pipeline.cycle")
	defer span.End()
	timer := logger.StartOperation(ctx, "cycle")

	records, err := p.source.Fetch(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Fetching picks failed", err)
		p.publish(ctx, picks.FetchErrorNotice)
		timer.EndWithError(err)
		return nil
	}

	now := p.clock.Now()
	today := picks.Today(now, p.loc)
	yesterday := picks.Yesterday(now, p.loc)
	tzLabel := picks.ZoneLabel(now, p.loc)

	annotation := picks.Summarize(picks.ByDate(records, yesterday), p.cfg.AmazingThresholdPct)
	selected := picks.Sample(picks.ByDate(records, today), p.cfg.SampleSize, p.rng)
	message := picks.BuildMessage(selected, today, tzLabel, annotation, p.cfg.MorePicksURL, p.cfg.IncludeLogos)

	p.publish(ctx, message)

	logger.CycleDone(ctx, len(records), len(selected), annotation != "")
	timer.End()
	return nil
}

// publish delivers text to the channel. Failures (including missing
// credentials) are logged and dropped; the channel simply gets no message
// this cycle.
func (p *Pipeline) publish(ctx context.Context, text string) {
	if err := p.publisher.Send(ctx, text); err != nil {
		logger.ErrorWithErr(ctx, "Publishing message failed", err)
	}
}
