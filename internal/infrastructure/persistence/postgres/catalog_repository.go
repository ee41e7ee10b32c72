package postgres

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

const (
	fetchCatalogSQL = `SELECT b.id, b.title, b.author_name, b.imgsrc, r.rating, r.date_read, n.note
FROM book b
LEFT JOIN rating r ON b.id = r.book_id
LEFT JOIN notes n ON b.id = n.book_id
WHERE b.user_id = $1
ORDER BY `

	insertBookSQL   = `INSERT INTO book (user_id, title, author_name, imgsrc) VALUES ($1, $2, $3, $4) RETURNING id`
	insertRatingSQL = `INSERT INTO rating (user_id, book_id, rating, date_read) VALUES ($1, $2, $3, $4)`
	insertNoteSQL   = `INSERT INTO notes (user_id, book_id, note) VALUES ($1, $2, $3)`
)

// CatalogRepository persists books with their rating and note rows.
type CatalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// sortColumn maps an allow-listed sort key to a column expression. Only
// these fixed expressions ever reach the query text.
func sortColumn(sortBy domain.SortBy) string {
	switch sortBy {
	case domain.SortByRecency:
		return "r.date_read"
	case domain.SortByRating:
		return "r.rating"
	default:
		return "b.title"
	}
}

func sortDirection(order domain.SortOrder) string {
	if order == domain.SortDesc {
		return "DESC"
	}
	return "ASC"
}

func (r *CatalogRepository) FetchCatalog(ctx context.Context, userID domain.UserID, sortBy domain.SortBy, order domain.SortOrder) ([]domain.CatalogRow, error) {
	query := fetchCatalogSQL + sortColumn(sortBy) + " " + sortDirection(order)
	rows, err := r.db.Query(ctx, query, int64(userID))
	if err != nil {
		return nil, storeErr("fetch catalog", err)
	}
	defer rows.Close()

	var catalog []domain.CatalogRow
	for rows.Next() {
		var (
			id  int64
			row domain.CatalogRow
		)
		if err := rows.Scan(&id, &row.Title, &row.AuthorName, &row.ImgSrc, &row.Rating, &row.DateRead, &row.Note); err != nil {
			return nil, storeErr("scan catalog row", err)
		}
		row.BookID = domain.BookID(id)
		catalog = append(catalog, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("fetch catalog", err)
	}
	return catalog, nil
}

// CreateEntry inserts the book, rating and note rows inside one transaction.
// The book row goes first since the other two reference its generated id;
// any failure rolls the whole unit back before the error surfaces.
func (r *CatalogRepository) CreateEntry(ctx context.Context, userID domain.UserID, entry domain.NewEntry) (domain.BookID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, storeErr("begin entry", err)
	}
	defer tx.Rollback(ctx)

	var bookID int64
	if err := tx.QueryRow(ctx, insertBookSQL, int64(userID), entry.Title, entry.Author, entry.ImgSrc).Scan(&bookID); err != nil {
		return 0, &domerrors.WriteError{Op: "insert book", Err: err}
	}
	if _, err := tx.Exec(ctx, insertRatingSQL, int64(userID), bookID, entry.Rating, entry.DateRead); err != nil {
		return 0, &domerrors.WriteError{Op: "insert rating", Err: err}
	}
	if _, err := tx.Exec(ctx, insertNoteSQL, int64(userID), bookID, entry.Note); err != nil {
		return 0, &domerrors.WriteError{Op: "insert note", Err: err}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, &domerrors.WriteError{Op: "commit entry", Err: err}
	}
	return domain.BookID(bookID), nil
}

// Ensure CatalogRepository implements ports.CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)
