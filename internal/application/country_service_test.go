package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/bnema/geoquiz-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCountryService(t *testing.T, opts CountryServiceOptions) (*CountryService, *mocks.MockCountrySource, *mocks.MockCountryCache) {
	t.Helper()

	source := mocks.NewMockCountrySource(t)
	cache := mocks.NewMockCountryCache(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	opts.Logger = zerolog.Nop()

	return NewCountryService(source, cache, clock, opts), source, cache
}

func upstreamCountries() []domain.Country {
	return []domain.Country{
		{Name: "Peru", Capital: "Lima", Region: "Americas"},
		{Name: "Israel", Capital: "Jerusalem", Region: "Asia"},
		{Name: "Antarctica", Capital: "", Region: "Antarctic"},
		{Name: "  ", Capital: "Nowhere", Region: "Oceania"},
		{Name: "France", Capital: " Paris ", Region: "Europe"},
	}
}

func TestCountryServiceAllCountriesFetchesAndCachesOnMiss(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{Exclude: []string{"Israel"}})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheMiss).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return(upstreamCountries(), nil).Once()

	want := []domain.Country{
		{Name: "France", Capital: "Paris", Region: "Europe"},
		{Name: "Peru", Capital: "Lima", Region: "Americas"},
	}
	cache.EXPECT().Save(mockAnyContext(), domain.CountrySnapshot{Countries: want, FetchedAt: fixedNow}).Return(nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Served from memory on the second call.
	again, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestCountryServiceAllCountriesUsesFreshCache(t *testing.T) {
	service, _, cache := newTestCountryService(t, CountryServiceOptions{MaxAge: time.Hour})

	cached := []domain.Country{{Name: "Chile", Capital: "Santiago"}}
	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: cached,
		FetchedAt: fixedNow.Add(-30 * time.Minute),
	}, nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCountryServiceAllCountriesAppliesExcludeToCachedSnapshot(t *testing.T) {
	service, _, cache := newTestCountryService(t, CountryServiceOptions{Exclude: []string{"Chile"}, MaxAge: time.Hour})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: []domain.Country{
			{Name: "Peru", Capital: "Lima"},
			{Name: "Chile", Capital: "Santiago"},
		},
		FetchedAt: fixedNow.Add(-30 * time.Minute),
	}, nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{{Name: "Peru", Capital: "Lima"}}, got)
}

func TestCountryServiceAllCountriesRefetchesWhenExcludeEmptiesCache(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{Exclude: []string{"Chile"}, MaxAge: time.Hour})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: []domain.Country{{Name: "Chile", Capital: "Santiago"}},
		FetchedAt: fixedNow.Add(-30 * time.Minute),
	}, nil).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{{Name: "Peru", Capital: "Lima"}}, got)
}

func TestCountryServiceAllCountriesRefetchesStaleCache(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{MaxAge: time.Hour})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: []domain.Country{{Name: "Chile", Capital: "Santiago"}},
		FetchedAt: fixedNow.Add(-2 * time.Hour),
	}, nil).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{{Name: "Peru", Capital: "Lima"}}, got)
}

func TestCountryServiceAllCountriesFallsBackToStaleCacheWhenFetchFails(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{MaxAge: time.Hour})

	stale := []domain.Country{{Name: "Chile", Capital: "Santiago"}}
	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: stale,
		FetchedAt: fixedNow.Add(-48 * time.Hour),
	}, nil).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return(nil, errors.New("dial tcp: timeout")).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stale, got)
}

func TestCountryServiceAllCountriesClearsCorruptCache(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheCorrupt).Once()
	cache.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCountryServiceAllCountriesSaveFailureIsNotFatal(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{})

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheMiss).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(errors.New("disk full")).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCountryServiceAllCountriesErrors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		service, _, cache := newTestCountryService(t, CountryServiceOptions{})
		loadErr := errors.New("permission denied")
		cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, loadErr).Once()

		_, err := service.AllCountries(context.Background())
		require.ErrorIs(t, err, loadErr)
	})

	t.Run("fetch failure without cache", func(t *testing.T) {
		service, source, cache := newTestCountryService(t, CountryServiceOptions{})
		fetchErr := errors.New("status 503")
		cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheMiss).Once()
		source.EXPECT().FetchAll(mockAnyContext()).Return(nil, fetchErr).Once()

		_, err := service.AllCountries(context.Background())
		require.ErrorIs(t, err, fetchErr)
	})

	t.Run("nothing playable", func(t *testing.T) {
		service, source, cache := newTestCountryService(t, CountryServiceOptions{Exclude: []string{"Peru"}})
		cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheMiss).Once()
		source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{
			{Name: "Peru", Capital: "Lima"},
			{Name: "Bouvet Island"},
		}, nil).Once()

		_, err := service.AllCountries(context.Background())
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})
}

func TestCountryServiceRefreshBypassesCache(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{})

	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()

	got, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{{Name: "Peru", Capital: "Lima"}}, got)

	// Memory copy is populated, so no Load happens.
	again, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestCountryServiceClearCacheDropsMemoryCopy(t *testing.T) {
	service, source, cache := newTestCountryService(t, CountryServiceOptions{})

	source.EXPECT().FetchAll(mockAnyContext()).Return([]domain.Country{{Name: "Peru", Capital: "Lima"}}, nil).Once()
	cache.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()
	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	cache.EXPECT().Clear(mockAnyContext()).Return(nil).Once()
	require.NoError(t, service.ClearCache(context.Background()))

	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{}, domain.ErrCacheMiss).Once()
	source.EXPECT().FetchAll(mockAnyContext()).Return(nil, errors.New("offline")).Once()
	_, err = service.AllCountries(context.Background())
	require.Error(t, err)
}

func TestCountryServiceReturnsCopies(t *testing.T) {
	service, _, cache := newTestCountryService(t, CountryServiceOptions{})
	cache.EXPECT().Load(mockAnyContext()).Return(domain.CountrySnapshot{
		Countries: []domain.Country{{Name: "Peru", Capital: "Lima"}},
		FetchedAt: fixedNow,
	}, nil).Once()

	got, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	got[0].Name = "Changed"

	again, err := service.AllCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Peru", again[0].Name)
}

func TestFilterByRegion(t *testing.T) {
	t.Parallel()

	countries := []domain.Country{
		{Name: "Peru", Region: "Americas"},
		{Name: "France", Region: "Europe"},
		{Name: "Chile", Region: "Americas"},
	}

	tests := []struct {
		name   string
		region string
		want   []string
	}{
		{name: "empty region keeps all", region: "", want: []string{"Peru", "France", "Chile"}},
		{name: "case insensitive", region: "americas", want: []string{"Peru", "Chile"}},
		{name: "unknown region", region: "Atlantis", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			names := make([]string, 0)
			for _, country := range FilterByRegion(countries, tt.region) {
				names = append(names, country.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()

	got := Regions([]domain.Country{
		{Name: "Peru", Region: "Americas"},
		{Name: "France", Region: "Europe"},
		{Name: "Chile", Region: "Americas"},
		{Name: "Nowhere"},
	})
	assert.Equal(t, []string{"Americas", "Europe"}, got)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
