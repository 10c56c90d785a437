package ports

import (
	"context"

	"github.com/bnema/geoquiz-cli/internal/domain"
)

// CountrySource fetches the full, unfiltered country list from upstream.
type CountrySource interface {
	FetchAll(ctx context.Context) ([]domain.Country, error)
}
