package domain

// SortBy selects the catalog sort column.
type SortBy string

// SortOrder selects the sort direction.
type SortOrder string

// Allow-listed sort keys and directions. Anything else normalizes to the
// default; caller input is never used verbatim in query text.
const (
	SortByTitle   SortBy = "title"
	SortByRecency SortBy = "recency"
	SortByRating  SortBy = "rating"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// NormalizeSortBy maps arbitrary caller input onto the allow-list,
// defaulting to title.
func NormalizeSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortByRecency:
		return SortByRecency
	case SortByRating:
		return SortByRating
	default:
		return SortByTitle
	}
}

// NormalizeSortOrder maps arbitrary caller input onto {asc, desc},
// defaulting to asc.
func NormalizeSortOrder(s string) SortOrder {
	if SortOrder(s) == SortDesc {
		return SortDesc
	}
	return SortAsc
}
