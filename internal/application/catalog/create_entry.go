package catalog

import (
	"context"
	"time"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

// CreateEntryInput carries the submitted entry form. Rating is nil when the
// field was absent; a submitted 0 is still present. DateRead is the raw
// form value so that absence and malformedness stay distinguishable.
type CreateEntryInput struct {
	UserID   domain.UserID
	Title    string
	Author   string
	ImgSrc   string
	Rating   *int
	Notes    string
	DateRead string
}

// Form field names, in the order the form declares them. Missing-field
// errors preserve this order.
var entryFields = []string{"title", "author", "imgSrc", "rating", "notes", "date"}

const dateLayout = "2006-01-02"

// CreateEntry validates a proposed entry and persists book, rating and note
// as one transaction.
type CreateEntry struct {
	catalog ports.CatalogRepository
	now     func() time.Time
}

func NewCreateEntry(catalog ports.CatalogRepository) *CreateEntry {
	return &CreateEntry{catalog: catalog, now: time.Now}
}

// Execute returns the new book id, a *MissingFieldsError naming every absent
// field, ErrFutureDate for a date after today, or a *WriteError when the
// transactional insert failed after rollback.
func (uc *CreateEntry) Execute(ctx context.Context, input CreateEntryInput) (domain.BookID, error) {
	var missing []string
	present := map[string]bool{
		"title":  input.Title != "",
		"author": input.Author != "",
		"imgSrc": input.ImgSrc != "",
		"rating": input.Rating != nil,
		"notes":  input.Notes != "",
		"date":   input.DateRead != "",
	}
	for _, f := range entryFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return 0, &domerrors.MissingFieldsError{Fields: missing}
	}

	dateRead, err := time.Parse(dateLayout, input.DateRead)
	if err != nil {
		return 0, &domerrors.MissingFieldsError{Fields: []string{"date"}}
	}
	today := truncateToDay(uc.now())
	if truncateToDay(dateRead).After(today) {
		return 0, domerrors.ErrFutureDate
	}

	return uc.catalog.CreateEntry(ctx, input.UserID, domain.NewEntry{
		Title:    input.Title,
		Author:   input.Author,
		ImgSrc:   input.ImgSrc,
		Rating:   input.Rating,
		Note:     input.Notes,
		DateRead: &dateRead,
	})
}

// truncateToDay collapses a timestamp to its calendar day so that "today"
// compares equal to now regardless of time of day or zone.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
