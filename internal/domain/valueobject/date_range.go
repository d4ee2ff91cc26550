// Package valueobject contains domain value objects for the Finex system.
package valueobject

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for named months.
const MonthLayout = "2006-01"

// DefaultMonthOptions is the number of months offered by the month picker.
const DefaultMonthOptions = 12

var (
	errIncompleteRange = errors.New("start and end dates are both required")
	errReversedRange   = errors.New("start date is after end date")
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// MonthRange returns the range covering the whole month of the given "YYYY-MM" value.
func MonthRange(month string) (DateRange, error) {
	first, err := time.ParseInLocation(MonthLayout, month, time.UTC)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{
		Start: first,
		End:   first.AddDate(0, 1, -1),
	}, nil
}

// CustomRange builds a range from two "YYYY-MM-DD" bounds. Both are required.
func CustomRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, errIncompleteRange
	}
	from, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return DateRange{}, err
	}
	to, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return DateRange{}, err
	}
	if from.After(to) {
		return DateRange{}, errReversedRange
	}
	return DateRange{Start: from, End: to}, nil
}

// CurrentMonth returns the range of the month containing now.
func CurrentMonth(now time.Time) DateRange {
	r, _ := MonthRange(now.Format(MonthLayout))
	return r
}

// MonthOptions lists the month of now followed by the n-1 previous months, as "YYYY-MM".
func MonthOptions(now time.Time, n int) []string {
	if n <= 0 {
		n = DefaultMonthOptions
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	options := make([]string, 0, n)
	for i := 0; i < n; i++ {
		options = append(options, first.AddDate(0, -i, 0).Format(MonthLayout))
	}
	return options
}
