package domain

import "time"

// BookID is a value object for book identity.
type BookID int64

// Book is one tracked book, owned by a single user.
type Book struct {
	ID         BookID
	UserID     UserID
	Title      string
	AuthorName string
	ImgSrc     string
}

// Rating records the numeric rating and finish date for a book.
type Rating struct {
	ID       int64
	UserID   UserID
	BookID   BookID
	Rating   int
	DateRead time.Time
}

// Note is the free-text note attached to a book.
type Note struct {
	ID     int64
	UserID UserID
	BookID BookID
	Note   string
}

// CatalogRow is one row of a user's catalog: a book left-joined with its
// rating and note. Rating, DateRead and Note are nil when the joined rows
// are absent.
type CatalogRow struct {
	BookID     BookID
	Title      string
	AuthorName string
	ImgSrc     string
	Rating     *int
	DateRead   *time.Time
	Note       *string
}

// NewEntry is the caller-supplied input for creating a catalog entry.
// String fields are raw form values; Rating is nil when the field was
// absent (a submitted 0 is still present).
type NewEntry struct {
	Title    string
	Author   string
	ImgSrc   string
	Rating   *int
	Note     string
	DateRead *time.Time
}
