// dates.go - Permissive date parsing with fixed-zone localization
package blog

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a metadata date string. Any format dateparse understands
// is accepted (ISO-8601, "March 3, 2020", slash forms). Strings without an
// explicit zone are interpreted as wall clock time in loc; a wall clock that
// is ambiguous or nonexistent there (DST fold or gap) is an error rather
// than a guess.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateParse, raw, err)
	}
	if t.Location() != loc {
		// The string carried its own zone; nothing to localize.
		return t, nil
	}
	// Parsing straight into loc already normalizes a wall clock that falls
	// in a DST gap, so t cannot be trusted to hold the literal fields. UTC
	// has no transitions; a second parse there preserves them.
	wall, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateParse, raw, err)
	}
	resolved, err := resolveWallClock(wall, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrDateParse, raw, err)
	}
	return resolved, nil
}

// resolveWallClock maps the wall clock fields of wall onto a unique instant
// in loc; the location wall itself carries is ignored. During a DST gap no
// instant shows that wall clock; during a fold two do. Both cases fail.
func resolveWallClock(wall time.Time, loc *time.Location) (time.Time, error) {
	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	ns := wall.Nanosecond()

	// Probe the zone offsets in effect around the requested day; a DST
	// transition within it yields two candidate offsets.
	approx := time.Date(y, mo, d, h, mi, s, ns, loc)
	offsets := make(map[int]bool)
	for _, probe := range []time.Time{approx.Add(-24 * time.Hour), approx, approx.Add(24 * time.Hour)} {
		_, off := probe.Zone()
		offsets[off] = true
	}

	var matches []time.Time
	for off := range offsets {
		cand := time.Date(y, mo, d, h, mi, s, ns, time.FixedZone("", off)).In(loc)
		cy, cmo, cd := cand.Date()
		ch, cmi, cs := cand.Clock()
		if cy != y || cmo != mo || cd != d || ch != h || cmi != mi || cs != s {
			continue
		}
		dup := false
		for _, m := range matches {
			if m.Equal(cand) {
				dup = true
				break
			}
		}
		if !dup {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return time.Time{}, fmt.Errorf("local time %04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
			y, mo, d, h, mi, s, loc)
	default:
		return time.Time{}, fmt.Errorf("local time %04d-%02d-%02d %02d:%02d:%02d is ambiguous in %s",
			y, mo, d, h, mi, s, loc)
	}
}
