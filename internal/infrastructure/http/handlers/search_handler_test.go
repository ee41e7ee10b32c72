package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

type fakeSearcher struct {
	results   []ports.BookCandidate
	err       error
	lastQuery string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]ports.BookCandidate, error) {
	f.lastQuery = query
	return f.results, f.err
}

func TestSearch_RendersCandidates(t *testing.T) {
	searcher := &fakeSearcher{results: []ports.BookCandidate{
		{Title: "Dune", AuthorName: "Frank Herbert", ImgSrc: "img"},
	}}
	h := NewSearchHandler(searcher, zerolog.Nop())

	form := url.Values{"query": {"dune"}}
	req := httptest.NewRequest(http.MethodPost, "/search-books", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dune", searcher.lastQuery)
	assert.Contains(t, rec.Body.String(), "Dune")
	assert.Contains(t, rec.Body.String(), "Frank Herbert")
}

func TestSearch_RemoteFailureIsServerError(t *testing.T) {
	h := NewSearchHandler(&fakeSearcher{err: domerrors.ErrProviderUnreachable}, zerolog.Nop())

	form := url.Values{"query": {"dune"}}
	req := httptest.NewRequest(http.MethodPost, "/search-books", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearch_EmptyQueryRendersForm(t *testing.T) {
	searcher := &fakeSearcher{}
	h := NewSearchHandler(searcher, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/search-books", strings.NewReader("query=++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, searcher.lastQuery)
}
