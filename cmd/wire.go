package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bnema/geoquiz-cli/internal/adapters/restcountries"
	tomlrepo "github.com/bnema/geoquiz-cli/internal/adapters/repo/toml"
	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg       *viper.Viper
	cache     *tomlrepo.CountryCache
	countries *application.CountryService
	games     *application.GameService
	logger    zerolog.Logger
	logSink   *logSink
}

// logSink lets the root command point the logger at its own stderr once
// cobra has resolved it.
type logSink struct {
	out io.Writer
}

func (s *logSink) Write(p []byte) (int, error) {
	if s.out == nil {
		return os.Stderr.Write(p)
	}
	return s.out.Write(p)
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.GetString(logLevelKey))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	sink := &logSink{}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: sink, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cache, err := tomlrepo.NewCountryCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire countries cache: %w", err)
	}

	source := restcountries.Client{
		BaseURL:        cfg.GetString(countriesURLKey),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.GetDuration(countriesTimeoutKey),
	}

	countries := application.NewCountryService(source, cache, ports.SystemClock{}, application.CountryServiceOptions{
		Exclude: cfg.GetStringSlice(countriesExcludeKey),
		MaxAge:  cfg.GetDuration(cacheMaxAgeKey),
		Logger:  logger.With().Str("component", "countries").Logger(),
	})

	return &app{
		cfg:       cfg,
		cache:     cache,
		countries: countries,
		games:     application.NewGameService(nil),
		logger:    logger,
		logSink:   sink,
	}, nil
}
