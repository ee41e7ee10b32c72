package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Rydon32/Book-Notes/internal/application/catalog"
	"github.com/Rydon32/Book-Notes/internal/domain"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
)

func TestCatalogDisplay_ScopedToSessionUser(t *testing.T) {
	repo := &fakeCatalogRepo{rows: []domain.CatalogRow{
		{BookID: 1, Title: "Dune", AuthorName: "Frank Herbert"},
	}}
	h := NewCatalogHandler(catalog.NewFetchCatalog(repo), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/catalog?sortBy=rating&sortOrder=desc", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.SessionClaims{UserID: 7, Name: "Ana"}))
	rec := httptest.NewRecorder()
	h.Display(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.UserID(7), repo.lastUID)
	assert.Contains(t, rec.Body.String(), "Dune")
	assert.Contains(t, rec.Body.String(), "Ana")
}

func TestCatalogDisplay_HostileSortInputStillServes(t *testing.T) {
	repo := &fakeCatalogRepo{}
	h := NewCatalogHandler(catalog.NewFetchCatalog(repo), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/catalog?sortBy=%27%3B+DROP+TABLE+book--&sortOrder=%27evil", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.SessionClaims{UserID: 7}))
	rec := httptest.NewRecorder()
	h.Display(rec, req)

	// Hostile values degrade to the default sort instead of erroring.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogDisplay_NoSessionRedirects(t *testing.T) {
	h := NewCatalogHandler(catalog.NewFetchCatalog(&fakeCatalogRepo{}), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Display(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
