package timeutil

import (
	"fmt"
	"time"
)

const DefaultLayout = "2006-01-02 15:04:05"

func NowUTC() time.Time {
	return time.Now().UTC()
}

// Format renders t with DefaultLayout. The zero time renders as "".
func Format(t time.Time) string {
	return FormatLayout(t, DefaultLayout)
}

func FormatLayout(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func Parse(value string) (time.Time, error) {
	return time.Parse(DefaultLayout, value)
}

// TimeAgo renders the distance between now and then as a coarse
// human-readable phrase.
func TimeAgo(now, then time.Time) string {
	diff := now.Sub(then)
	days := int(diff.Hours() / 24)

	switch {
	case days > 365:
		return plural(days/365, "year")
	case days > 30:
		return plural(days/30, "month")
	case days > 0:
		return plural(days, "day")
	case diff > time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff > time.Minute:
		return plural(int(diff.Minutes()), "minute")
	default:
		return "just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
