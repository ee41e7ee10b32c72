package catalog

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
)

// FetchCatalogInput carries raw, untrusted sort parameters from the caller.
type FetchCatalogInput struct {
	UserID    domain.UserID
	SortBy    string
	SortOrder string
}

// FetchCatalog returns a user's catalog under an allow-listed sort.
type FetchCatalog struct {
	catalog ports.CatalogRepository
}

func NewFetchCatalog(catalog ports.CatalogRepository) *FetchCatalog {
	return &FetchCatalog{catalog: catalog}
}

// Execute normalizes the sort parameters onto the allow-list before the
// repository ever sees them; hostile input degrades to (title, asc) rather
// than reaching query text.
func (uc *FetchCatalog) Execute(ctx context.Context, input FetchCatalogInput) ([]domain.CatalogRow, error) {
	sortBy := domain.NormalizeSortBy(input.SortBy)
	order := domain.NormalizeSortOrder(input.SortOrder)
	return uc.catalog.FetchCatalog(ctx, input.UserID, sortBy, order)
}
