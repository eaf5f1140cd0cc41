package series

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxSpanDays is the longest period a series may cover, end date minus start date.
const MaxSpanDays = 92

// DateLayout is the calendar date format used for series boundaries.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("end_date must be >= start_date")
	ErrSpanTooLong      = fmt.Errorf("series period cannot exceed %d days", MaxSpanDays)
)

// Series is a bounded competition made of rounds.
type Series struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func (s Series) Validate() error {
	return ValidatePeriod(s.StartDate, s.EndDate)
}

// ValidatePeriod checks calendar dates only; time of day is ignored.
func ValidatePeriod(start, end time.Time) error {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	if SpanDays(start, end) > MaxSpanDays {
		return ErrSpanTooLong
	}

	return nil
}

// SpanDays returns the number of whole days between two calendar dates.
func SpanDays(start, end time.Time) int {
	return int(Date(end).Sub(Date(start)).Hours() / 24)
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", v, err)
	}
	return t, nil
}
