package schedule

import (
	"testing"
	"time"
)

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return c
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"06:00", 360, true},
		{"23:59", 1439, true},
		{"9:30", 570, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if int(got) != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClockTimeString(t *testing.T) {
	if s := ClockTime(360).String(); s != "06:00" {
		t.Errorf("String() = %q, want %q", s, "06:00")
	}
	if s := ClockTime(1439).String(); s != "23:59" {
		t.Errorf("String() = %q, want %q", s, "23:59")
	}
}

func TestBlockContains_NonWrapping(t *testing.T) {
	b := Block{Name: "work", Start: mustClock(t, "09:00"), End: mustClock(t, "17:00")}

	cases := []struct {
		at   string
		want bool
	}{
		{"08:59", false},
		{"09:00", true}, // start inclusive
		{"12:00", true},
		{"16:59", true},
		{"17:00", false}, // end exclusive
		{"23:00", false},
		{"00:00", false},
	}
	for _, tc := range cases {
		if got := b.Contains(mustClock(t, tc.at)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestBlockContains_Wrapping(t *testing.T) {
	b := Block{Name: "night", Start: mustClock(t, "22:00"), End: mustClock(t, "06:00")}
	if !b.Wraps() {
		t.Fatal("expected block to wrap past midnight")
	}

	cases := []struct {
		at   string
		want bool
	}{
		{"21:59", false},
		{"22:00", true}, // start inclusive
		{"23:59", true},
		{"00:00", true},
		{"03:00", true},
		{"05:59", true},
		{"06:00", false}, // end exclusive
		{"12:00", false},
	}
	for _, tc := range cases {
		if got := b.Contains(mustClock(t, tc.at)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestBlockContains_Empty(t *testing.T) {
	b := Block{Name: "degenerate", Start: mustClock(t, "10:00"), End: mustClock(t, "10:00")}
	for _, at := range []string{"09:59", "10:00", "10:01"} {
		if b.Contains(mustClock(t, at)) {
			t.Errorf("zero-length block should contain nothing, matched %s", at)
		}
	}
}

func TestListActiveAt_FirstMatchWins(t *testing.T) {
	l := List{
		{Name: "deep-work", Start: mustClock(t, "09:00"), End: mustClock(t, "11:00")},
		{Name: "morning", Start: mustClock(t, "06:00"), End: mustClock(t, "12:00")},
	}

	got, ok := l.ActiveAt(mustClock(t, "10:00"))
	if !ok || got.Name != "deep-work" {
		t.Errorf("ActiveAt(10:00) = %q, %v; want deep-work (document order wins)", got.Name, ok)
	}

	got, ok = l.ActiveAt(mustClock(t, "11:30"))
	if !ok || got.Name != "morning" {
		t.Errorf("ActiveAt(11:30) = %q, %v; want morning", got.Name, ok)
	}

	if _, ok := l.ActiveAt(mustClock(t, "14:00")); ok {
		t.Error("ActiveAt(14:00) matched, want no block")
	}
}

func TestListNextTransition(t *testing.T) {
	l := List{
		{Name: "morning", Start: mustClock(t, "06:00"), End: mustClock(t, "12:00")},
		{Name: "night", Start: mustClock(t, "22:00"), End: mustClock(t, "06:00")},
	}

	now := time.Date(2025, 3, 10, 10, 15, 42, 0, time.UTC)
	next, ok := l.NextTransition(now)
	if !ok {
		t.Fatal("expected a transition")
	}
	want := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("NextTransition = %v, want %v", next, want)
	}

	// From late evening the next boundary is tomorrow's 06:00.
	now = time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	next, ok = l.NextTransition(now)
	if !ok {
		t.Fatal("expected a transition")
	}
	want = time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("NextTransition = %v, want %v", next, want)
	}

	// An instant exactly on a boundary rolls to the following one.
	now = time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	next, _ = l.NextTransition(now)
	want = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("NextTransition on boundary = %v, want %v", next, want)
	}

	if _, ok := (List{}).NextTransition(now); ok {
		t.Error("empty list should have no transition")
	}
}

func TestListNextTransition_DSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	l := List{{Name: "morning", Start: mustClock(t, "06:00"), End: mustClock(t, "12:00")}}

	// Clocks jump from 02:00 to 03:00 on 2025-03-09, so the day is only
	// 23 hours long. The boundary must land on wall-clock 06:00, not six
	// real hours after midnight.
	now := time.Date(2025, 3, 8, 23, 0, 0, 0, loc)
	next, ok := l.NextTransition(now)
	if !ok {
		t.Fatal("expected a transition")
	}
	want := time.Date(2025, 3, 9, 6, 0, 0, 0, loc)
	if !next.Equal(want) {
		t.Errorf("NextTransition = %v, want %v", next, want)
	}
	if hh, mm, _ := next.Clock(); hh != 6 || mm != 0 {
		t.Errorf("NextTransition wall clock = %02d:%02d, want 06:00", hh, mm)
	}
}
