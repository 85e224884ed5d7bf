package browse

import "github.com/ladlekit/ladle/internal/recipes"

// TotalPages returns ceiling(total / pageSize). Zero when either input is
// non-positive.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage bounds a requested page to [1, totalPages]. Previous at page 1
// stays at 1; next at the last page stays at the last page. With no pages at
// all the result is pinned to 1 so the query stays well-formed.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Skip returns the zero-based record offset for a 1-based page.
func Skip(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Slice cuts one page out of a fully-fetched result set for the
// client-paginated variant. The input is never modified, so slicing the same
// set for the same page is idempotent.
func Slice(full []recipes.Recipe, page, pageSize int) []recipes.Recipe {
	if pageSize <= 0 || len(full) == 0 {
		return nil
	}
	first := Skip(page, pageSize)
	if first >= len(full) {
		return nil
	}
	last := first + pageSize
	if last > len(full) {
		last = len(full)
	}
	return full[first:last]
}
