package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/bnema/geoquiz-cli/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultCacheMaxAge = 30 * 24 * time.Hour

type CountryServiceOptions struct {
	// Exclude lists country names dropped from fetched and cached lists.
	Exclude []string
	// MaxAge bounds how old a cached snapshot may be before it is refetched.
	// Zero or negative keeps cached data forever.
	MaxAge time.Duration
	Logger zerolog.Logger
}

// CountryService supplies the playable country list, caching it in memory
// and through ports.CountryCache between runs.
type CountryService struct {
	source  ports.CountrySource
	cache   ports.CountryCache
	clock   ports.Clock
	exclude map[string]struct{}
	maxAge  time.Duration
	log     zerolog.Logger

	mu        sync.Mutex
	countries []domain.Country
}

func NewCountryService(source ports.CountrySource, cache ports.CountryCache, clock ports.Clock, opts CountryServiceOptions) *CountryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		exclude[name] = struct{}{}
	}

	return &CountryService{
		source:  source,
		cache:   cache,
		clock:   clock,
		exclude: exclude,
		maxAge:  opts.MaxAge,
		log:     opts.Logger,
	}
}

// AllCountries returns the playable countries, preferring the in-memory copy,
// then a fresh cache snapshot, then the upstream source.
func (s *CountryService) AllCountries(ctx context.Context) ([]domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.countries) > 0 {
		return cloneCountries(s.countries), nil
	}

	snapshot, err := s.cache.Load(ctx)
	switch {
	case err == nil:
		// The exclude list may have changed since the snapshot was written.
		snapshot.Countries = s.filter(snapshot.Countries)
		if !snapshot.IsStale(s.clock.Now(), s.maxAge) && len(snapshot.Countries) > 0 {
			s.log.Debug().Int("count", len(snapshot.Countries)).Time("fetched_at", snapshot.FetchedAt).Msg("countries cache hit")
			s.countries = cloneCountries(snapshot.Countries)
			return cloneCountries(s.countries), nil
		}
		s.log.Debug().Time("fetched_at", snapshot.FetchedAt).Msg("countries cache stale")
	case errors.Is(err, domain.ErrCacheMiss):
		snapshot = domain.CountrySnapshot{}
		s.log.Debug().Msg("countries cache miss")
	case errors.Is(err, domain.ErrCacheCorrupt):
		snapshot = domain.CountrySnapshot{}
		s.log.Warn().Err(err).Msg("countries cache corrupt, clearing")
		if clearErr := s.cache.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("clear corrupt countries cache")
		}
	default:
		return nil, fmt.Errorf("load countries cache: %w", err)
	}

	countries, err := s.fetch(ctx)
	if err != nil {
		if len(snapshot.Countries) == 0 {
			return nil, err
		}
		// Upstream failed: serve the stale snapshot instead.
		s.log.Warn().Err(err).Time("fetched_at", snapshot.FetchedAt).Msg("using stale countries cache")
		s.countries = cloneCountries(snapshot.Countries)
		return cloneCountries(s.countries), nil
	}

	return cloneCountries(countries), nil
}

// Refresh bypasses both caches and refetches from the source.
func (s *CountryService) Refresh(ctx context.Context) ([]domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	countries, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return cloneCountries(countries), nil
}

func (s *CountryService) ClearCache(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.countries = nil
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear countries cache: %w", err)
	}

	return nil
}

func (s *CountryService) fetch(ctx context.Context) ([]domain.Country, error) {
	fetched, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}

	countries := s.filter(fetched)
	s.log.Info().Int("fetched", len(fetched)).Int("kept", len(countries)).Msg("countries fetched")
	if len(countries) == 0 {
		return nil, fmt.Errorf("fetch countries: %w", domain.ErrInsufficientData)
	}

	snapshot := domain.CountrySnapshot{Countries: countries, FetchedAt: s.clock.Now().UTC()}
	if err := s.cache.Save(ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Msg("save countries cache")
	}

	s.countries = countries
	return countries, nil
}

func (s *CountryService) filter(countries []domain.Country) []domain.Country {
	kept := make([]domain.Country, 0, len(countries))
	for _, country := range countries {
		country.Name = strings.TrimSpace(country.Name)
		country.Capital = strings.TrimSpace(country.Capital)
		if !country.Valid() {
			continue
		}
		if _, excluded := s.exclude[country.Name]; excluded {
			continue
		}
		kept = append(kept, country)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Name < kept[j].Name
	})

	return kept
}

// FilterByRegion keeps countries whose region matches region, ignoring case.
// An empty region returns countries unchanged.
func FilterByRegion(countries []domain.Country, region string) []domain.Country {
	region = strings.TrimSpace(region)
	if region == "" {
		return countries
	}

	filtered := make([]domain.Country, 0, len(countries))
	for _, country := range countries {
		if strings.EqualFold(country.Region, region) {
			filtered = append(filtered, country)
		}
	}

	return filtered
}

// Regions lists the distinct non-empty regions in countries, sorted.
func Regions(countries []domain.Country) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0)
	for _, country := range countries {
		if country.Region == "" {
			continue
		}
		if _, ok := seen[country.Region]; ok {
			continue
		}
		seen[country.Region] = struct{}{}
		regions = append(regions, country.Region)
	}
	sort.Strings(regions)

	return regions
}

func cloneCountries(countries []domain.Country) []domain.Country {
	out := make([]domain.Country, len(countries))
	copy(out, countries)
	return out
}
