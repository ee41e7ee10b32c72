package ports

import "context"

// BookCandidate is one result from the remote catalog search.
type BookCandidate struct {
	Title      string
	AuthorName string
	ImgSrc     string
}

// BookSearcher queries the remote book catalog. Implementations bound the
// result list themselves (at most 10 candidates).
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]BookCandidate, error)
}
