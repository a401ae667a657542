package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date flag that is not a valid YYYY-MM-DD calendar
// date, or a range whose start falls after its end.
var ErrInvalidDate = errors.New("invalid date")

// dateLayout is the only accepted input format, which is also the format the
// search API expects in the created qualifier.
const dateLayout = "2006-01-02"

// defaultRangeDays is how far back the range reaches when --from is omitted.
const defaultRangeDays = 30

// DateRange is a closed interval of calendar dates. Construct it with
// ResolveDateRange; a resolved range always satisfies Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange parses the optional from/to strings into a DateRange.
// An empty from defaults to now minus 30 days, an empty to defaults to now.
func ResolveDateRange(from, to string, now time.Time) (DateRange, error) {
	start := now.AddDate(0, 0, -defaultRangeDays)
	if from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, from)
		}
		start = parsed
	}

	end := now
	if to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, to)
		}
		end = parsed
	}

	// Compare at date granularity so that a --to of today is never rejected
	// against a start carrying the current clock time.
	if start.Format(dateLayout) > end.Format(dateLayout) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidDate, start.Format(dateLayout), end.Format(dateLayout))
	}

	return DateRange{Start: start, End: end}, nil
}

// Query renders the range as a created qualifier for the search API.
func (r DateRange) Query() string {
	return fmt.Sprintf("created:%s..%s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// String formats the range for user-facing messages.
func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}
