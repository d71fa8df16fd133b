package core

import (
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock used for audit timestamps
type TimeProvider interface {
	// Now returns the current time in the provider's location
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// Location returns the time zone business timestamps are interpreted in
	Location() *time.Location
}
