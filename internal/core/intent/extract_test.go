package intent

import (
	"math"
	"slices"
	"testing"

	"voicebooking/internal/core/catalogue"
)

func TestNormalizeSeat(t *testing.T) {
	cases := map[string]string{
		"12a":         "12A",
		"12 A":        "12A",
		"seat 3 c":    "3C",
		"1b please":   "1B",
		"row 7":       "",
		"window seat": "",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeSeat(in); got != want {
			t.Errorf("NormalizeSeat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSpokenOTPIsSixDigitsOrNothing(t *testing.T) {
	x := newExtractor(catalogue.MustLoad())
	cases := map[string]string{
		"one two three four five six":       "123456",
		"oh oh seven one two three":         "007123",
		"my code is nine eight seven six five four": "987654",
		"one two three":                     "",
		"one two three four five six seven": "",
		"hello there":                       "",
		"":                                  "",
	}
	for in, want := range cases {
		got := x.spokenOTP(in)
		if got != want {
			t.Errorf("spokenOTP(%q) = %q, want %q", in, got, want)
		}
		if got != "" && (len(got) != 6 || !isDigits(got)) {
			t.Errorf("spokenOTP(%q) = %q is not six digits", in, got)
		}
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func TestCapitalizeNameIdempotent(t *testing.T) {
	for _, in := range []string{"john smith", "JOHN   SMITH", "mcDonald", "ana maria de souza", "élodie durand", "x"} {
		once := CapitalizeName(in)
		if twice := CapitalizeName(once); twice != once {
			t.Errorf("CapitalizeName not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
	if got := CapitalizeName("JOHN   SMITH"); got != "John Smith" {
		t.Fatalf("CapitalizeName = %q", got)
	}
}

func TestExtractLastAssignmentWins(t *testing.T) {
	x := newExtractor(catalogue.MustLoad())
	got := x.extract("window or aisle, front or back, blind and deaf", ContextGeneral)
	want := Entities{SeatPreference: "aisle", RowPreference: "back", Assistance: "hearing"}
	if got != want {
		t.Fatalf("extract = %+v, want %+v", got, want)
	}
}

func TestRecommendNeverEmpty(t *testing.T) {
	pool := catalogue.MustLoad().Seats
	for _, seat := range []string{"", "window", "aisle", "middle", "bogus"} {
		for _, row := range []string{"", "front", "back", "bogus"} {
			got := Recommend(pool, Entities{SeatPreference: seat, RowPreference: row})
			if !slices.Contains(pool, got) {
				t.Errorf("Recommend(%q,%q) = %q, not in pool", seat, row, got)
			}
		}
	}
	cases := []struct {
		seat, row, want string
	}{
		{"window", "back", "10A"},
		{"aisle", "front", "1C"},
		{"middle", "back", "10B"},
		{"", "", "1A"},
	}
	for _, c := range cases {
		if got := Recommend(pool, Entities{SeatPreference: c.seat, RowPreference: c.row}); got != c.want {
			t.Errorf("Recommend(%q,%q) = %q, want %q", c.seat, c.row, got, c.want)
		}
	}
	if got := Recommend([]string{"20A"}, Entities{RowPreference: "front"}); got != "20A" {
		t.Fatalf("empty filter result should fall back to the first seat, got %q", got)
	}
	if Recommend(nil, Entities{}) != "" {
		t.Fatal("nil pool should yield empty")
	}
}

func TestMatchScore(t *testing.T) {
	cases := []struct {
		in, phrase string
		want       float64
	}{
		{"hello", "hello", 1.0},
		{"hello there", "hello", 0.8},
		{"book a flight", "book flight", 2.0 / 3.0},
		{"", "hello", 0},
		{"good night", "good morning", 0.5},
	}
	for _, c := range cases {
		if got := MatchScore(c.in, c.phrase); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("MatchScore(%q,%q) = %v, want %v", c.in, c.phrase, got, c.want)
		}
	}
}

func TestPhraseIndexFindsOverlaps(t *testing.T) {
	a := newPhraseIndex()
	pats := []string{"he", "she", "his", "hers", "seat"}
	for i, p := range pats {
		a.add(p, i)
	}
	a.add("", 99)
	a.build()

	seen := make([]bool, len(pats))
	a.contained("ushers", seen)
	want := []bool{true, true, false, true, false}
	if !slices.Equal(seen, want) {
		t.Fatalf("contained = %v, want %v", seen, want)
	}
}
