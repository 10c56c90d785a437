package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllDecodesCountries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3.1/all", r.URL.Path)
		assert.Equal(t, "name,capital,flags,population,region", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":{"common":"Peru","official":"Republic of Peru"},"capital":["Lima"],"flags":{"svg":"https://flagcdn.com/pe.svg","png":"https://flagcdn.com/w320/pe.png"},"population":32971846,"region":"Americas"},
			{"name":{"common":"South Africa"},"capital":["Pretoria","Bloemfontein","Cape Town"],"flags":{"png":"https://flagcdn.com/w320/za.png"},"population":59308690,"region":"Africa"},
			{"name":{"common":"Antarctica"},"capital":[],"flags":{"svg":"https://flagcdn.com/aq.svg"},"population":1000,"region":"Antarctic"}
		]`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL + "/v3.1", HTTPClient: server.Client()}

	countries, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{
		{Name: "Peru", Capital: "Lima", FlagURL: "https://flagcdn.com/pe.svg", Region: "Americas", Population: 32971846},
		{Name: "South Africa", Capital: "Pretoria", FlagURL: "https://flagcdn.com/w320/za.png", Region: "Africa", Population: 59308690},
		{Name: "Antarctica", FlagURL: "https://flagcdn.com/aq.svg", Region: "Antarctic", Population: 1000},
	}, countries)
}

func TestFetchAllReturnsStatusAndBodyOnFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestFetchAllRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decode countries response"))
}

func TestFetchAllTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 10 * time.Millisecond}

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAllURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr string
	}{
		{name: "default", baseURL: "", want: "https://restcountries.com/v3.1/all?fields=name%2Ccapital%2Cflags%2Cpopulation%2Cregion"},
		{name: "trailing slash", baseURL: "http://127.0.0.1:8080/api/", want: "http://127.0.0.1:8080/api/all?fields=name%2Ccapital%2Cflags%2Cpopulation%2Cregion"},
		{name: "bare host", baseURL: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080/all?fields=name%2Ccapital%2Cflags%2Cpopulation%2Cregion"},
		{name: "bad scheme", baseURL: "ftp://example.com", wantErr: "must use http or https"},
		{name: "missing host", baseURL: "https:///v3.1", wantErr: "host is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Client{BaseURL: tt.baseURL}.allURL()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
