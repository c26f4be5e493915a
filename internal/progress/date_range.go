package progress

import "time"

const dateLayout = "2006-01-02"

// defaultRangeDays is the window used when a range bound is missing
// or does not parse. Lenient on purpose: a bad bound falls back to
// the default instead of rejecting the request.
const defaultRangeDays = 30

// DateRange is an inclusive calendar date range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange builds a range from raw query values, falling back to
// [today-30d, today] per bound. Defaults are truncated to midnight so
// that rows dated exactly on the boundary day stay inside the range.
func ParseDateRange(from, to string, now time.Time) DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rng := DateRange{
		From: today.AddDate(0, 0, -defaultRangeDays),
		To:   today,
	}
	if parsed, err := time.Parse(dateLayout, from); err == nil {
		rng.From = parsed
	}
	if parsed, err := time.Parse(dateLayout, to); err == nil {
		rng.To = parsed
	}
	return rng
}

func (r DateRange) FromString() string {
	return r.From.Format(dateLayout)
}

func (r DateRange) ToString() string {
	return r.To.Format(dateLayout)
}
