// Package browse defines the query and result state for recipe browsing.
//
// Query carries the user-controlled fetch parameters (page, search text,
// sort field and order). Result carries the outcome of the latest fetch.
// The pagination laws (page clamping, total-page arithmetic, local slicing
// for the client-paginated variant) live here as pure functions so both the
// UI and its tests share one definition.
package browse
