package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/catalog"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
)

// EntryHandler serves the review form and the entry submission.
type EntryHandler struct {
	create *catalog.CreateEntry
	log    zerolog.Logger
}

func NewEntryHandler(create *catalog.CreateEntry, log zerolog.Logger) *EntryHandler {
	return &EntryHandler{create: create, log: log}
}

// ChooseBook carries a picked search candidate into the review form.
func (h *EntryHandler) ChooseBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	renderPage(w, "entry", struct {
		Title  string
		Author string
		ImgSrc string
	}{
		Title:  r.PostFormValue("title"),
		Author: r.PostFormValue("author"),
		ImgSrc: r.PostFormValue("imgSrc"),
	})
}

// Create validates the submitted entry and persists book, rating and note
// as one unit. Missing fields redirect back to the catalog with the exact
// field list; a future date is a client error; write failures stay generic.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserFromContext(r.Context())
	if claims == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	input := catalog.CreateEntryInput{
		UserID:   claims.UserID,
		Title:    r.PostFormValue("title"),
		Author:   r.PostFormValue("author"),
		ImgSrc:   r.PostFormValue("imgSrc"),
		Notes:    r.PostFormValue("notes"),
		DateRead: r.PostFormValue("date"),
	}
	// A submitted rating of 0 is present; only a blank field counts as
	// missing.
	if raw := r.PostFormValue("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err == nil {
			input.Rating = &rating
		}
	}

	_, err := h.create.Execute(r.Context(), input)
	if err == nil {
		middleware.RecordEntryCreated()
		http.Redirect(w, r, "/catalog", http.StatusFound)
		return
	}

	var missing *domerrors.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		redirectWithError(w, r, "/catalog", missing.Error())
	case errors.Is(err, domerrors.ErrFutureDate):
		http.Error(w, "Date cannot be in the future.", http.StatusBadRequest)
	default:
		h.log.Error().Err(err).Str("op", "create entry").Int64("user_id", int64(claims.UserID)).Msg("entry write failure")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
