package timeutil

import (
	"testing"
	"time"
)

func TestInRangeIsInclusive(t *testing.T) {
	day := func(s string) time.Time {
		parsed, err := ParseDate(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return parsed
	}

	cases := []struct {
		t          string
		start, end string
		want       bool
	}{
		{"2026-03-10", "2026-03-10", "2026-03-10", true},
		{"2026-03-10", "2026-03-01", "2026-03-31", true},
		{"2026-02-28", "2026-03-01", "2026-03-31", false},
		{"2026-04-01", "2026-03-01", "2026-03-31", false},
	}
	for _, c := range cases {
		if got := InRange(day(c.t), c.start, c.end); got != c.want {
			t.Errorf("InRange(%s, %s, %s) = %v, want %v", c.t, c.start, c.end, got, c.want)
		}
	}
}

func TestInRangeIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	if !InRange(late, "2026-03-10", "2026-03-10") {
		t.Error("a late-evening timestamp must still match its own date")
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("14:30"); err != nil {
		t.Errorf("valid clock rejected: %v", err)
	}
	for _, bad := range []string{"25:00", "14:60", "noon"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) accepted, want error", bad)
		}
	}
}
