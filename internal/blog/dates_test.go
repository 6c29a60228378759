package blog

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading America/New_York: %v", err)
	}
	return loc
}

func TestParseDate_Formats(t *testing.T) {
	loc := eastern(t)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2020-03-01", time.Date(2020, 3, 1, 0, 0, 0, 0, loc)},
		{"March 3, 2020", time.Date(2020, 3, 3, 0, 0, 0, 0, loc)},
		{"2021-06-15 10:30:00", time.Date(2021, 6, 15, 10, 30, 0, 0, loc)},
		{"09/17/2012", time.Date(2012, 9, 17, 0, 0, 0, 0, loc)},
		// Either side of the 2021-03-14 spring-forward gap resolves
		// cleanly; only the gap itself is rejected.
		{"2021-03-14 01:30:00", time.Date(2021, 3, 14, 1, 30, 0, 0, loc)},
		{"2021-03-14 03:30:00", time.Date(2021, 3, 14, 3, 30, 0, 0, loc)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in, loc)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_ExplicitZoneKept(t *testing.T) {
	loc := eastern(t)
	got, err := ParseDate("2020-03-01T10:00:00Z", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	loc := eastern(t)
	for _, in := range []string{"not a date", "date: soon", ""} {
		if _, err := ParseDate(in, loc); !errors.Is(err, ErrDateParse) {
			t.Errorf("ParseDate(%q) error = %v, want ErrDateParse", in, err)
		}
	}
}

func TestParseDate_NonexistentLocalTime(t *testing.T) {
	loc := eastern(t)
	// 2:30 AM on 2021-03-14 falls inside the spring-forward gap in
	// America/New_York. It must fail rather than shift to a clock that
	// did exist.
	got, err := ParseDate("2021-03-14 02:30:00", loc)
	if !errors.Is(err, ErrDateParse) {
		t.Fatalf("got %v, error = %v, want ErrDateParse", got, err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error should name the nonexistent time, got: %v", err)
	}
}

func TestParseDate_AmbiguousLocalTime(t *testing.T) {
	loc := eastern(t)
	// 1:30 AM on 2021-11-07 occurs twice during the fall-back fold.
	_, err := ParseDate("2021-11-07 01:30:00", loc)
	if !errors.Is(err, ErrDateParse) {
		t.Fatalf("error = %v, want ErrDateParse", err)
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("error should mention ambiguity, got: %v", err)
	}
}

func TestResolveWallClock_Unambiguous(t *testing.T) {
	loc := eastern(t)
	in := time.Date(2021, 6, 15, 12, 0, 0, 0, loc)
	got, err := resolveWallClock(in, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(in) {
		t.Errorf("got %v, want %v", got, in)
	}
}
