package picks

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"match-poster-bot/internal/types"
)

func rec(date, outcome string) types.MatchRecord {
	return types.MatchRecord{
		HomeTeam: "Home", AwayTeam: "Away", League: "League", Country: "Country",
		Time: "18:00", Pick: "1", Result: "1-0", Outcome: outcome, Date: date,
	}
}

func TestByDateExactMatch(t *testing.T) {
	records := []types.MatchRecord{
		rec("2026-08-29", ""),
		rec("2026-08-28", "win"),
		rec("2026-08-29", ""),
		rec("29-08-2026", ""), // malformed, must never match
	}

	got := ByDate(records, "2026-08-29")
	if len(got) != 2 {
		t.Fatalf("Expected 2 records for 2026-08-29, got %d", len(got))
	}
	for _, r := range got {
		if r.Date != "2026-08-29" {
			t.Errorf("Record with date %q leaked through the filter", r.Date)
		}
	}
}

func TestByDateAbsentDate(t *testing.T) {
	records := []types.MatchRecord{rec("2026-08-29", ""), rec("2026-08-28", "win")}

	if got := ByDate(records, "2026-01-01"); len(got) != 0 {
		t.Errorf("Expected empty result for absent date, got %d records", len(got))
	}
	if got := ByDate(nil, "2026-08-29"); len(got) != 0 {
		t.Errorf("Expected empty result for nil input, got %d records", len(got))
	}
}

func TestSummarizeEmptyAndIncomplete(t *testing.T) {
	if got := Summarize(nil, 75); got != "" {
		t.Errorf("Expected no annotation for empty set, got %q", got)
	}

	incomplete := []types.MatchRecord{rec("2026-08-28", ""), rec("2026-08-28", "")}
	if got := Summarize(incomplete, 75); got != "" {
		t.Errorf("Expected no annotation for all-incomplete set, got %q", got)
	}
}

func TestSummarizePerfectDayAnyCasing(t *testing.T) {
	records := []types.MatchRecord{
		rec("2026-08-28", "win"),
		rec("2026-08-28", "WIN"),
		rec("2026-08-28", "Win"),
		rec("2026-08-28", ""), // pending records do not count
	}

	got := Summarize(records, 75)
	if !strings.Contains(got, "PERFECT DAY") {
		t.Errorf("Expected perfect day annotation, got %q", got)
	}
	if !strings.Contains(got, "All 3") {
		t.Errorf("Expected completed count 3 in annotation, got %q", got)
	}
}

func TestSummarizeAmazingDayAtThreshold(t *testing.T) {
	records := []types.MatchRecord{
		rec("2026-08-28", "win"),
		rec("2026-08-28", "win"),
		rec("2026-08-28", "win"),
		rec("2026-08-28", "lose"),
	}

	got := Summarize(records, 75)
	if !strings.Contains(got, "Amazing day") {
		t.Fatalf("Expected amazing day annotation at exactly 75%%, got %q", got)
	}
	if !strings.Contains(got, "3/4") || !strings.Contains(got, "75.00%") {
		t.Errorf("Expected literal fraction and percentage in annotation, got %q", got)
	}
}

func TestSummarizeBelowThreshold(t *testing.T) {
	// 74/100 completed wins: just under the inclusive 75% boundary.
	var records []types.MatchRecord
	for i := 0; i < 74; i++ {
		records = append(records, rec("2026-08-28", "win"))
	}
	for i := 0; i < 26; i++ {
		records = append(records, rec("2026-08-28", "lose"))
	}

	if got := Summarize(records, 75); got != "" {
		t.Errorf("Expected no annotation at 74%%, got %q", got)
	}
}

func TestSampleBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var records []types.MatchRecord
	for i := 0; i < 7; i++ {
		r := rec("2026-08-29", "")
		r.HomeTeam = fmt.Sprintf("Team %d", i)
		records = append(records, r)
	}

	got := Sample(records, 3, rng)
	if len(got) != 3 {
		t.Fatalf("Expected exactly 3 records, got %d", len(got))
	}

	if got := Sample(records[:2], 3, rng); len(got) != 2 {
		t.Errorf("Expected min(3, 2) = 2 records, got %d", len(got))
	}
	if got := Sample(nil, 3, rng); len(got) != 0 {
		t.Errorf("Expected no records from empty input, got %d", len(got))
	}
}

func TestSampleNoDuplicatesAndMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var records []types.MatchRecord
	for i := 0; i < 10; i++ {
		r := rec("2026-08-29", "")
		r.HomeTeam = fmt.Sprintf("Team %d", i)
		records = append(records, r)
	}
	members := map[string]bool{}
	for _, r := range records {
		members[r.HomeTeam] = true
	}

	for run := 0; run < 50; run++ {
		got := Sample(records, 3, rng)
		seen := map[string]bool{}
		for _, r := range got {
			if !members[r.HomeTeam] {
				t.Fatalf("Selected record %q not present in input", r.HomeTeam)
			}
			if seen[r.HomeTeam] {
				t.Fatalf("Record %q selected twice in one sample", r.HomeTeam)
			}
			seen[r.HomeTeam] = true
		}
	}
}

func TestSampleDeterministicWithFixedSeed(t *testing.T) {
	var records []types.MatchRecord
	for i := 0; i < 8; i++ {
		r := rec("2026-08-29", "")
		r.HomeTeam = fmt.Sprintf("Team %d", i)
		records = append(records, r)
	}

	first := Sample(records, 3, rand.New(rand.NewSource(42)))
	second := Sample(records, 3, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical selections for the same seed, got %v vs %v", first, second)
	}
}
