package ports

import (
	"context"

	"github.com/bnema/geoquiz-cli/internal/domain"
)

type CountryCache interface {
	// Load returns domain.ErrCacheMiss when nothing has been cached yet.
	Load(ctx context.Context) (domain.CountrySnapshot, error)
	Save(ctx context.Context, snapshot domain.CountrySnapshot) error
	Clear(ctx context.Context) error
}
