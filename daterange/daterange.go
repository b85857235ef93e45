// Package daterange resolves symbolic date-range tokens to concrete windows.
package daterange

import "time"

// Range is a local-calendar-day aligned window: Start is at 00:00:00.000 and
// End at 23:59:59.999 of their respective days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve maps a token to a window relative to now. Unrecognised tokens get
// a 30-day forward window. Pure function of (token, now), no I/O.
func Resolve(token string, now time.Time) Range {
	start := startOfDay(now)

	switch token {
	case "today":
		return Range{Start: start, End: endOfDay(now)}
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		return Range{Start: startOfDay(tomorrow), End: endOfDay(tomorrow)}
	case "this-week":
		// Up to and including the next Sunday.
		end := now.AddDate(0, 0, 7-int(now.Weekday()))
		return Range{Start: start, End: endOfDay(end)}
	case "this-weekend":
		daysUntilFriday := 0
		if dow := int(now.Weekday()); dow <= int(time.Friday) {
			daysUntilFriday = int(time.Friday) - dow
		}
		friday := start.AddDate(0, 0, daysUntilFriday)
		return Range{Start: friday, End: endOfDay(friday.AddDate(0, 0, 2))}
	case "this-month":
		end := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(end)}
	case "next-month":
		first := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, now.Location())
		return Range{Start: first, End: endOfDay(last)}
	default:
		return Range{Start: start, End: endOfDay(now.AddDate(0, 0, 30))}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
