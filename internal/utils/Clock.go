package utils

import "time"

// Clock abstracts time for the data store so tests can pin entity
// timestamps (wishlist cooling-off, tool lastUpdated, remote updated_at).
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// NowISO renders a clock reading in the RFC3339 form used throughout the
// persisted document.
func NowISO(c Clock) string {
	return c.Now().UTC().Format(time.RFC3339)
}
