package ports

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/domain"
)

// UserRepository defines persistence for reader accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (domain.UserID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
}

// CatalogRepository defines persistence for books and their rating/note rows.
type CatalogRepository interface {
	// FetchCatalog returns the user's books left-joined with rating and
	// note, ordered by the given (already normalized) sort key.
	FetchCatalog(ctx context.Context, userID domain.UserID, sortBy domain.SortBy, order domain.SortOrder) ([]domain.CatalogRow, error)
	// CreateEntry inserts book, rating and note as one transaction and
	// returns the new book id. No row is visible if any insert fails.
	CreateEntry(ctx context.Context, userID domain.UserID, entry domain.NewEntry) (domain.BookID, error)
}
