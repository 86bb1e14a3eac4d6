package textmatch

import (
	"testing"
	"unicode/utf8"
)

func TestMatchSumsWeights(t *testing.T) {
	table := []Pattern{
		{"not working", 2},
		{"fed up", 3},
		{"broken", 2},
	}

	matched, total := Match("I'm FED UP, it is still not working", table)
	if total != 5 {
		t.Fatalf("expected total weight 5, got %d", total)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matched phrases, got %v", matched)
	}
}

func TestMatchIsSubstringNotWordBoundary(t *testing.T) {
	table := []Pattern{{"mad", 2}}

	matched, total := Match("the madness continues", table)
	if total != 2 || len(matched) != 1 {
		t.Fatalf("expected substring match inside word, got %v (weight %d)", matched, total)
	}
}

func TestMatchNoHits(t *testing.T) {
	matched, total := Match("all quiet", []Pattern{{"storm", 1}})
	if total != 0 || matched != nil {
		t.Fatalf("expected no matches, got %v (weight %d)", matched, total)
	}
}

func TestCountMatchesCountsPhrasesOnce(t *testing.T) {
	phrases := []string{"how long", "still waiting", "how long"}
	if got := CountMatches("how long will this take", phrases); got != 2 {
		t.Fatalf("expected per-entry counting, got %d", got)
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("short string must stay untouched, got %q", got)
	}
	got := Truncate("病毒警报病毒警报", 5)
	if got != "病毒警报病" {
		t.Fatalf("expected first 5 runes, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated string must stay valid UTF-8: %q", got)
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("My WORK deadline is near", []string{"work", "office"}) {
		t.Fatalf("expected case-insensitive hit")
	}
	if ContainsAny("hello", []string{"work"}) {
		t.Fatalf("expected miss")
	}
}
