package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountrySnapshotStaleDetection(t *testing.T) {
	fetchedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	s := CountrySnapshot{FetchedAt: fetchedAt}

	assert.False(t, s.IsStale(fetchedAt.Add(5*time.Minute), 10*time.Minute))
	assert.True(t, s.IsStale(fetchedAt.Add(11*time.Minute), 10*time.Minute))
}

func TestCountrySnapshotStaleDetectionNonPositiveMaxAge(t *testing.T) {
	fetchedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	s := CountrySnapshot{FetchedAt: fetchedAt}

	assert.False(t, s.IsStale(fetchedAt.Add(24*time.Hour), 0))
	assert.False(t, s.IsStale(fetchedAt.Add(24*time.Hour), -1*time.Minute))
}

func TestCountrySnapshotStaleDetectionZeroFetchedAt(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, CountrySnapshot{}.IsStale(now, 10*time.Minute))
}
