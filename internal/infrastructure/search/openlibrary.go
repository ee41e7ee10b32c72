package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

// DefaultEndpoint is the Open Library search API.
const DefaultEndpoint = "https://openlibrary.org/search.json"

// maxResults bounds the candidate list returned to the caller.
const maxResults = 10

// OpenLibraryClient implements ports.BookSearcher against the Open Library
// search API.
type OpenLibraryClient struct {
	client   *http.Client
	endpoint string
}

// Option configures OpenLibraryClient.
type Option func(*OpenLibraryClient)

// WithClient sets the HTTP client (default: 10s timeout).
func WithClient(c *http.Client) Option {
	return func(o *OpenLibraryClient) { o.client = c }
}

// WithEndpoint overrides the search URL, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(o *OpenLibraryClient) { o.endpoint = endpoint }
}

func NewOpenLibraryClient(opts ...Option) *OpenLibraryClient {
	c := &OpenLibraryClient{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Docs []struct {
		Title      string   `json:"title"`
		AuthorName []string `json:"author_name"`
		CoverID    int64    `json:"cover_i"`
	} `json:"docs"`
}

// Search returns up to 10 candidates for the query.
func (c *OpenLibraryClient) Search(ctx context.Context, query string) ([]ports.BookCandidate, error) {
	u := c.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: open library: %v", domerrors.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: open library returned %d", domerrors.ErrProviderUnreachable, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: open library: %v", domerrors.ErrProviderUnreachable, err)
	}

	docs := body.Docs
	if len(docs) > maxResults {
		docs = docs[:maxResults]
	}
	candidates := make([]ports.BookCandidate, 0, len(docs))
	for _, d := range docs {
		cand := ports.BookCandidate{Title: d.Title}
		if len(d.AuthorName) > 0 {
			cand.AuthorName = d.AuthorName[0]
		}
		if d.CoverID != 0 {
			cand.ImgSrc = "https://covers.openlibrary.org/b/id/" + strconv.FormatInt(d.CoverID, 10) + "-M.jpg"
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// Ensure OpenLibraryClient implements ports.BookSearcher.
var _ ports.BookSearcher = (*OpenLibraryClient)(nil)
