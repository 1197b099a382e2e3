package ports

import (
	"context"

	"github.com/bnema/spidy/internal/domain"
)

type CatalogRepository interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Save(ctx context.Context, catalog domain.Catalog) error
}
