package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/bnema/geoquiz-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	CachePathKey = "cache.path"

	cacheFileMode   = 0o600
	cacheDirMode    = 0o700
	cacheConfigDir  = ".geoquiz"
	cacheConfigFile = "countries.toml"
	tempFilePattern = ".countries-*.toml.tmp"
)

// CountryCache persists the fetched country list as a versioned TOML file.
type CountryCache struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CountryCache = (*CountryCache)(nil)

// DefaultDir is the per-user directory holding the cache and config.toml.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, cacheConfigDir), nil
}

func NewCountryCache(cfg *viper.Viper) (*CountryCache, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg.SetDefault(CachePathKey, filepath.Join(dir, cacheConfigFile))

	path := cfg.GetString(CachePathKey)
	if path == "" {
		return nil, errors.New("countries cache path is empty")
	}
	path, err = normalizeCachePath(path)
	if err != nil {
		return nil, err
	}

	return &CountryCache{path: path, mu: lockForPath(path)}, nil
}

func (c *CountryCache) Path() string {
	return c.path
}

func (c *CountryCache) Load(ctx context.Context) (domain.CountrySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.CountrySnapshot{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	file, err := c.readSchema()
	if err != nil {
		return domain.CountrySnapshot{}, err
	}

	return fromSchema(file), nil
}

func (c *CountryCache) Save(ctx context.Context, snapshot domain.CountrySnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return c.writeSchema(toSchema(snapshot))
}

// Clear removes the cache file. A missing file is not an error.
func (c *CountryCache) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove countries cache file: %w", err)
	}

	return nil
}

func (c *CountryCache) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, domain.ErrCacheMiss
		}
		return fileSchema{}, fmt.Errorf("read countries cache file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode countries cache file: %w: %w", domain.ErrCacheCorrupt, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeCachePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve countries cache path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (c *CountryCache) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(c.path), cacheDirMode); err != nil {
		return fmt.Errorf("create countries cache directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode countries cache file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(c.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp countries cache file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp countries cache file: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp countries cache file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp countries cache file: %w", err)
	}

	if err := os.Rename(tempName, c.path); err != nil {
		return fmt.Errorf("replace countries cache file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(snapshot domain.CountrySnapshot) fileSchema {
	countries := make([]countrySchema, 0, len(snapshot.Countries))
	for _, country := range snapshot.Countries {
		countries = append(countries, countrySchema{
			Name:       country.Name,
			Capital:    country.Capital,
			FlagURL:    country.FlagURL,
			Region:     country.Region,
			Population: country.Population,
		})
	}

	return fileSchema{
		Version:   currentSchemaVersion,
		FetchedAt: formatTime(snapshot.FetchedAt),
		Countries: countries,
	}
}

func fromSchema(file fileSchema) domain.CountrySnapshot {
	countries := make([]domain.Country, 0, len(file.Countries))
	for _, entry := range file.Countries {
		countries = append(countries, domain.Country{
			Name:       entry.Name,
			Capital:    entry.Capital,
			FlagURL:    entry.FlagURL,
			Region:     entry.Region,
			Population: entry.Population,
		})
	}

	return domain.CountrySnapshot{
		Countries: countries,
		FetchedAt: parseTime(file.FetchedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
