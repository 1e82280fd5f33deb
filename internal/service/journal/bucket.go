package journal

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTimestamp marks a record whose timestamp could not be
// parsed. The record is dropped; the run continues.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// DateKey is a calendar date in the reference timezone. It is the sole
// grouping key for journal output.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDateKey(t time.Time, loc *time.Location) DateKey {
	lt := t.In(loc)
	return DateKey{Year: lt.Year(), Month: lt.Month(), Day: lt.Day()}
}

func (d DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d DateKey) Before(o DateKey) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// ParseStamp parses an API timestamp. The Bee API emits RFC 3339, with
// or without fractional seconds.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return t, nil
}

// BucketStamp resolves a raw timestamp to its calendar day in loc.
// Records straddling local midnight land on the local day, not the UTC
// day.
func BucketStamp(s string, loc *time.Location) (DateKey, error) {
	t, err := ParseStamp(s)
	if err != nil {
		return DateKey{}, err
	}
	return NewDateKey(t, loc), nil
}
