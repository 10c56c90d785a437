package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/bnema/geoquiz-cli/internal/adapters/httpapi"
	"github.com/bnema/geoquiz-cli/internal/adapters/restcountries"
	tomlrepo "github.com/bnema/geoquiz-cli/internal/adapters/repo/toml"
	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "GQ"

	cacheMaxAgeKey      = "cache.max_age"
	countriesURLKey     = "countries.url"
	countriesExcludeKey = "countries.exclude"
	countriesTimeoutKey = "countries.timeout"
	gameRoundsKey       = "game.rounds"
	gameRoundDelayKey   = "game.round_delay"
	logLevelKey         = "log.level"
	serveAddrKey        = "serve.addr"
	serveMaxSessionsKey = "serve.max_sessions"
	serveSessionTTLKey  = "serve.session_ttl"
)

// loadConfig layers defaults, ~/.geoquiz/config.toml, an optional .env file
// and GQ_* environment variables, in increasing priority.
func loadConfig() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	cfg := viper.New()

	dir, err := tomlrepo.DefaultDir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(cacheMaxAgeKey, application.DefaultCacheMaxAge)
	cfg.SetDefault(countriesURLKey, restcountries.DefaultBaseURL)
	cfg.SetDefault(countriesExcludeKey, []string{"Israel"})
	cfg.SetDefault(countriesTimeoutKey, 30*time.Second)
	cfg.SetDefault(gameRoundsKey, domain.DefaultRoundCount)
	cfg.SetDefault(gameRoundDelayKey, 1500*time.Millisecond)
	cfg.SetDefault(logLevelKey, "warn")
	cfg.SetDefault(serveAddrKey, "127.0.0.1:8787")
	cfg.SetDefault(serveMaxSessionsKey, httpapi.DefaultMaxSessions)
	cfg.SetDefault(serveSessionTTLKey, httpapi.DefaultSessionIdleTTL)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}
