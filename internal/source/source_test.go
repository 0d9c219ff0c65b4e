package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"match-poster-bot/internal/picks"
	"match-poster-bot/internal/store"
)

func TestFeedSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("Expected configured header, got %q", got)
		}
		w.Write([]byte(`{"server_response":[
			{"home_team":"Arsenal","away_team":"Chelsea","league":"Premier League","country":"England",
			 "m_time":"19:00","pick":"Over 2.5","result":"-","outcome":"","m_date":"2026-08-29"}
		]}`))
	}))
	defer srv.Close()

	src := NewFeedSource(store.FeedConfig{
		URL:            srv.URL,
		TimeoutSeconds: 5,
		Headers:        map[string]string{"X-Api-Key": "secret"},
	})

	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].HomeTeam != "Arsenal" || records[0].Date != "2026-08-29" {
		t.Errorf("Record fields not decoded: %+v", records[0])
	}
}

func TestFeedSourceMissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	src := NewFeedSource(store.FeedConfig{URL: srv.URL})
	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected missing envelope to be treated as no data, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty record set, got %d", len(records))
	}
}

func TestFeedSourceNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewFeedSource(store.FeedConfig{URL: srv.URL})
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestFeedSourceBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	src := NewFeedSource(store.FeedConfig{URL: srv.URL})
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("Expected error for unparsable body")
	}
}

func TestFeedSourceMissingURL(t *testing.T) {
	src := NewFeedSource(store.FeedConfig{})
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Error("Expected error when no url is configured")
	}
}

func TestStaticSourceDates(t *testing.T) {
	loc := time.FixedZone("EAT", 3*3600)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	src := NewStaticSource(clock, loc)

	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	today := picks.Today(clock.Now(), loc)
	yesterday := picks.Yesterday(clock.Now(), loc)

	todays := picks.ByDate(records, today)
	if len(todays) == 0 {
		t.Error("Expected sample records dated today")
	}
	for _, r := range todays {
		if r.Completed() {
			t.Errorf("Today's sample record %s should be pending", r.HomeTeam)
		}
	}

	yesterdays := picks.ByDate(records, yesterday)
	if len(yesterdays) == 0 {
		t.Error("Expected sample records dated yesterday")
	}
	for _, r := range yesterdays {
		if !r.Completed() {
			t.Errorf("Yesterday's sample record %s should carry an outcome", r.HomeTeam)
		}
	}

	if len(todays)+len(yesterdays) != len(records) {
		t.Errorf("Sample dataset contains stray dates: %d today + %d yesterday of %d",
			len(todays), len(yesterdays), len(records))
	}
}

func TestFactoryModes(t *testing.T) {
	loc := time.UTC
	clock := clockwork.NewFakeClock()

	cfg := store.Default()
	if _, ok := New(cfg, clock, loc).(*StaticSource); !ok {
		t.Error("Expected StaticSource for default config")
	}

	cfg.DataSource = "LIVE"
	cfg.Feed.URL = "https://example.com/feed"
	if _, ok := New(cfg, clock, loc).(*FeedSource); !ok {
		t.Error("Expected FeedSource for LIVE config")
	}
}
