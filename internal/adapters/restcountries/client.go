package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/bnema/geoquiz-cli/internal/ports"
)

const (
	DefaultBaseURL = "https://restcountries.com/v3.1"

	allPath          = "all"
	allFields        = "name,capital,flags,population,region"
	maxResponseBytes = 8 << 20
	maxErrorBodySize = 512
)

var _ ports.CountrySource = Client{}

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type countryPayload struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital []string `json:"capital"`
	Flags   struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
	Population int64  `json:"population"`
	Region     string `json:"region"`
}

// FetchAll downloads every country. Entries are returned as-is; filtering
// happens in the application layer.
func (c Client) FetchAll(ctx context.Context) ([]domain.Country, error) {
	endpoint, err := c.allURL()
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create countries request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request countries: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		message := strings.TrimSpace(string(body))
		if message == "" {
			return nil, fmt.Errorf("request countries: status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("request countries: status %d: %s", resp.StatusCode, message)
	}

	var payload []countryPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode countries response: %w", err)
	}

	countries := make([]domain.Country, 0, len(payload))
	for _, item := range payload {
		countries = append(countries, item.toDomain())
	}

	return countries, nil
}

func (p countryPayload) toDomain() domain.Country {
	country := domain.Country{
		Name:       p.Name.Common,
		FlagURL:    p.Flags.SVG,
		Region:     p.Region,
		Population: p.Population,
	}
	if country.FlagURL == "" {
		country.FlagURL = p.Flags.PNG
	}
	if len(p.Capital) > 0 {
		country.Capital = p.Capital[0]
	}
	return country
}

func (c Client) allURL() (string, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse countries base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("countries base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("countries base url host is required")
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	endpoint := parsed.JoinPath(allPath)
	query := endpoint.Query()
	query.Set("fields", allFields)
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}
