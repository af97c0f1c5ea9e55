package quote

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrMalformedDate is returned when a date string is not yyyy-mm-dd.
	ErrMalformedDate = errors.New("dates must be in yyyy-mm-dd format")
)

const dateLayout = "2006-01-02"

// DateRange is a rental period. A zero End is treated as a one-day rental
// ending on the start date.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange from two dates. A zero end date collapses
// to the start date.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.IsZero() {
		end = start
	}
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// ParseDateRange parses yyyy-mm-dd formatted dates. An empty end string is
// treated as absent.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date %q", ErrMalformedDate, startStr)
	}
	var end time.Time
	if endStr != "" {
		end, err = time.Parse(dateLayout, endStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end date %q", ErrMalformedDate, endStr)
		}
	}
	return NewDateRange(start, end)
}

// Validate rejects ranges whose end precedes their start.
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Days returns the billable duration: ceil((end-start)/24h) with a one-day
// minimum, so a same-day rental counts as a single day.
func (r DateRange) Days() int64 {
	diff := r.End.Sub(r.Start)
	days := int64(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}
