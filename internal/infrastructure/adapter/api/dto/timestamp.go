package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is how timestamps are written on the wire: ISO-8601 without a zone,
// with microseconds only when they are non-zero
const TimestampLayout = "2006-01-02T15:04:05.999999"

// zonedLayouts carry an explicit offset; naiveLayouts do not
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	}
)

// Timestamp is a business date-time. Zone-less input is taken as written;
// input with an offset keeps it until Wall converts it.
type Timestamp struct {
	time.Time
	zoned bool
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp accepts ISO-8601 date-times with or without fractional seconds and offset, or a bare date
func ParseTimestamp(value string) (Timestamp, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t, zoned: true}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: expected ISO-8601 such as 2025-04-01T08:15:30", value)
}

// Wall returns the wall clock of the timestamp as seen in loc, stored without a zone (as UTC).
// Zone-less input comes back unchanged.
func (t Timestamp) Wall(loc *time.Location) time.Time {
	v := t.Time
	if t.zoned && loc != nil {
		v = v.In(loc)
	}
	return time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)
}

// MarshalJSON writes the timestamp in TimestampLayout
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(TimestampLayout))
}

// UnmarshalJSON reads any of the accepted layouts
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
