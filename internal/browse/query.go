package browse

import "strings"

// SortField enumerates the user-selectable sort fields.
type SortField int

const (
	SortNone SortField = iota
	SortName
	SortRating
	SortDifficulty
)

// SortOrder is the direction applied to the active sort field.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Query holds the user-controlled parameters that determine which slice of
// the catalog is requested. It is mutated only by user input; fetch results
// never write back into it.
type Query struct {
	Page      int // 1-based
	Search    string
	SortField SortField
	SortOrder SortOrder
}

// DefaultQuery returns the state used on initial mount.
func DefaultQuery() Query {
	return Query{Page: 1}
}

// WithSearch returns the query with new search text applied. The page always
// resets to 1 so a previously valid page cannot land out of range against
// the newly filtered result set.
func (q Query) WithSearch(text string) Query {
	q.Search = strings.TrimSpace(text)
	q.Page = 1
	return q
}

// WithPage returns the query moved to the given page, clamped to
// [1, totalPages]. A totalPages of zero pins the page at 1.
func (q Query) WithPage(page, totalPages int) Query {
	q.Page = ClampPage(page, totalPages)
	return q
}

// NextSortField cycles to the next sort field.
func (q Query) NextSortField() Query {
	switch q.SortField {
	case SortNone:
		q.SortField = SortName
	case SortName:
		q.SortField = SortRating
	case SortRating:
		q.SortField = SortDifficulty
	default:
		q.SortField = SortNone
	}
	return q
}

// ToggleSortOrder flips between ascending and descending.
func (q Query) ToggleSortOrder() Query {
	if q.SortOrder == Ascending {
		q.SortOrder = Descending
	} else {
		q.SortOrder = Ascending
	}
	return q
}

// SortBy returns the provider's parameter value for the sort field, empty
// when no sort is active.
func (q Query) SortBy() string {
	switch q.SortField {
	case SortName:
		return "name"
	case SortRating:
		return "rating"
	case SortDifficulty:
		return "difficulty"
	default:
		return ""
	}
}

// Order returns the provider's parameter value for the sort direction.
func (q Query) Order() string {
	if q.SortOrder == Descending {
		return "desc"
	}
	return "asc"
}

// ParseSortField maps a provider parameter value back to a SortField.
// Unknown values mean no sort.
func ParseSortField(value string) SortField {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "name":
		return SortName
	case "rating":
		return SortRating
	case "difficulty":
		return SortDifficulty
	default:
		return SortNone
	}
}

// ParseSortOrder maps a provider parameter value back to a SortOrder.
func ParseSortOrder(value string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(value), "desc") {
		return Descending
	}
	return Ascending
}

// SortLabel returns the display label for the active sort field.
func (q Query) SortLabel() string {
	switch q.SortField {
	case SortName:
		return "Name"
	case SortRating:
		return "Rating"
	case SortDifficulty:
		return "Difficulty"
	default:
		return "Default"
	}
}
