package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/logger"
	"match-poster-bot/internal/picks"
	"match-poster-bot/internal/pipeline"
	"match-poster-bot/internal/scheduler"
	"match-poster-bot/internal/source"
	"match-poster-bot/internal/store"
	"match-poster-bot/internal/telegram"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	_ = godotenv.Load()
	must(logger.Init())
	defer logger.Shutdown(context.Background())

	cfg, err := store.LoadConfig(configPath())
	must(err)
	applyEnv(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Info(ctx, "Shutting down...")
		cancel()
	}()

	clock := clockwork.NewRealClock()
	loc := picks.LoadLocation(cfg.Digest.Timezone)
	src := source.New(cfg, clock, loc)
	pub := telegram.NewPublisher(cfg.Telegram)
	pipe := pipeline.New(src, pub, cfg.Digest, clock, nil)

	if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == "" {
		// Cycles still run; the publisher reports the missing credentials
		// and the cycle is skipped instead of crashing the process.
		logger.Warn(ctx, "BOT_TOKEN or CHANNEL_ID not set; messages will not be delivered")
	}

	if os.Getenv("BOT_DEBUG") != "" {
		if err := pub.Send(ctx, picks.SelfTestNotice); err != nil {
			logger.ErrorWithErr(ctx, "Startup self-test failed", err)
		}
	}

	logger.Info(ctx, "Bot started.",
		"data_source", cfg.DataSource,
		"interval_seconds", cfg.Schedule.IntervalSeconds,
		"timezone", cfg.Digest.Timezone)

	scheduler.New(cfg.Schedule, clock, pipe.Run).Run(ctx)
}

func configPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

// applyEnv overlays environment-provided settings: secrets never live in
// the yaml file, and the feed URL and more-picks link can be overridden per
// deployment.
func applyEnv(cfg *store.Config) {
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	cfg.Telegram.Token = os.Getenv("BOT_TOKEN")
	if v := os.Getenv("CHANNEL_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("MORE_PICKS_URL"); v != "" {
		cfg.Digest.MorePicksURL = v
	}
}
