package series

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := ParseDate(v)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func TestValidatePeriod(t *testing.T) {
	t.Parallel()

	start := mustDate(t, "2026-01-01")

	t.Run("same day", func(t *testing.T) {
		if err := ValidatePeriod(start, start); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exactly max span", func(t *testing.T) {
		end := start.AddDate(0, 0, MaxSpanDays)
		if got := SpanDays(start, end); got != MaxSpanDays {
			t.Fatalf("span days: got=%d want=%d", got, MaxSpanDays)
		}
		if err := ValidatePeriod(start, end); err != nil {
			t.Fatalf("expected %d days to be accepted, got %v", MaxSpanDays, err)
		}
	})

	t.Run("one day over max span", func(t *testing.T) {
		end := start.AddDate(0, 0, MaxSpanDays+1)
		if err := ValidatePeriod(start, end); !errors.Is(err, ErrSpanTooLong) {
			t.Fatalf("expected ErrSpanTooLong, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		if err := ValidatePeriod(start, start.AddDate(0, 0, -1)); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("time of day ignored", func(t *testing.T) {
		end := start.AddDate(0, 0, MaxSpanDays).Add(23 * time.Hour)
		if err := ValidatePeriod(start.Add(time.Hour), end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSeriesValidate(t *testing.T) {
	t.Parallel()

	s := Series{Name: "Monsoon Cup", StartDate: mustDate(t, "2026-06-01"), EndDate: mustDate(t, "2026-08-31")}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Name = ""
	if err := s.Validate(); err != nil {
		t.Fatalf("blank name must be accepted, got %v", err)
	}

	s.EndDate = s.StartDate.AddDate(0, 0, -1)
	if err := s.Validate(); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
	if _, err := ParseDate("01/02/2026"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
