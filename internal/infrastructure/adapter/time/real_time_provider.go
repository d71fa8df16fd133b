package time

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
)

// DefaultTimezone is the zone audit timestamps are recorded in unless configured otherwise
const DefaultTimezone = "Asia/Tokyo"

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a time provider that reports times in loc.
// A nil loc means UTC.
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// NewRealTimeProviderForZone creates a time provider for an IANA zone name such as "Asia/Tokyo"
func NewRealTimeProviderForZone(name string) (core.TimeProvider, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return NewRealTimeProvider(loc), nil
}

// Now returns the current time in the provider's location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Location returns the provider's time zone
func (p *RealTimeProvider) Location() *time.Location {
	return p.location
}
