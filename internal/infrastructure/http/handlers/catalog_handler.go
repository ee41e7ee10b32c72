package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/catalog"
	"github.com/Rydon32/Book-Notes/internal/domain"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
)

// CatalogHandler serves the catalog view.
type CatalogHandler struct {
	fetch *catalog.FetchCatalog
	log   zerolog.Logger
}

func NewCatalogHandler(fetch *catalog.FetchCatalog, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{fetch: fetch, log: log}
}

// Display renders the caller's catalog under the requested sort. The user
// comes exclusively from the request's session claims; sort parameters are
// normalized downstream.
func (h *CatalogHandler) Display(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserFromContext(r.Context())
	if claims == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	rows, err := h.fetch.Execute(r.Context(), catalog.FetchCatalogInput{
		UserID:    claims.UserID,
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	})
	if err != nil {
		h.log.Error().Err(err).Str("op", "fetch catalog").Int64("user_id", int64(claims.UserID)).Msg("catalog query failure")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	renderPage(w, "catalog", struct {
		Name  string
		Error string
		Rows  []domain.CatalogRow
	}{
		Name:  claims.Name,
		Error: r.URL.Query().Get("error"),
		Rows:  rows,
	})
}
