package strength

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	minute = 60.0
	hour   = 60 * minute
	day    = 24 * hour
	year   = 365 * day
)

var largeUnits = []struct {
	name  string
	years float64
}{
	{"trillion", 1e12},
	{"billion", 1e9},
	{"million", 1e6},
	{"thousand", 1e3},
}

// CrackTimeLabel renders seconds as the largest whole unit.
func CrackTimeLabel(seconds float64) string {
	switch {
	case seconds < 1:
		return "Instant"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < year:
		return plural(seconds/day, "day")
	}
	years := seconds / year
	if years < 1e3 {
		return plural(years, "year")
	}
	for _, u := range largeUnits {
		if years < u.years {
			continue
		}
		n := math.Floor(years / u.years)
		if n >= 1e15 {
			return fmt.Sprintf("%.1e %s years", n, u.name)
		}
		return humanize.Comma(int64(n)) + " " + u.name + " years"
	}
	return plural(years, "year")
}

func plural(v float64, unit string) string {
	n := int64(math.Floor(v))
	if n == 1 {
		return "1 " + unit
	}
	return humanize.Comma(n) + " " + unit + "s"
}
