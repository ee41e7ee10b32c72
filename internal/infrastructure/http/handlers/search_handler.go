package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
)

// SearchHandler serves the remote catalog search.
type SearchHandler struct {
	searcher ports.BookSearcher
	log      zerolog.Logger
}

func NewSearchHandler(searcher ports.BookSearcher, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{searcher: searcher, log: log}
}

// Page renders the empty search form.
func (h *SearchHandler) Page(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "search", struct{ Results []ports.BookCandidate }{})
}

// Search submits the query to the remote catalog and renders up to 10
// candidates.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	query := strings.TrimSpace(r.PostFormValue("query"))
	if query == "" {
		renderPage(w, "search", struct{ Results []ports.BookCandidate }{})
		return
	}
	results, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		h.log.Error().Err(err).Str("op", "search books").Msg("remote catalog failure")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	renderPage(w, "search", struct{ Results []ports.BookCandidate }{Results: results})
}
