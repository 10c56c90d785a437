package domain

import "time"

// CountrySnapshot is a cached copy of the country list and when it was fetched.
type CountrySnapshot struct {
	Countries []Country
	FetchedAt time.Time
}

func (s CountrySnapshot) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.FetchedAt.IsZero() {
		return true
	}

	if maxAge <= 0 {
		return false
	}

	return now.Sub(s.FetchedAt) > maxAge
}
