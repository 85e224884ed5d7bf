// Package ui provides the terminal user interface for browsing recipes.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds three groups of state:
//
//   - Query state: page, search text, sort field and order. Mutated only by
//     user input; every change funnels through dispatchFetch, which derives
//     request parameters from the query and issues exactly one fetch command.
//   - Result state: the latest fetched page, total count, and the fetch
//     phase (loading, ok, failed). Replaced wholesale on every completion.
//   - Presentation state: card cursor, scroll window, detail overlay,
//     search prompt, help overlay, theme.
//
// # Superseded fetches
//
// Each dispatched fetch carries a monotonically increasing generation token
// (fetchSeq). A completion whose token does not match the latest dispatch is
// discarded, so overlapping fetches can never apply a stale page over a
// newer one.
//
// # Views
//
//   - Card list: one card per recipe (name, difficulty badge, rating, meal
//     types, time, servings, calories, image URL), paginated with clamped
//     previous/next controls.
//   - Detail overlay: centered modal with the full record, ingredients and
//     instructions as numbered lists. Closes on esc or on a mouse click
//     outside its rectangle; clicks inside are contained.
//   - Search prompt: "/" opens a text input; enter applies (page resets to
//     1), esc cancels.
//   - Help overlay: "?" toggles; any key closes.
//
// # Key Bindings
//
//   - j/k or arrows: move between cards
//   - h/l or ←/→: previous/next page
//   - enter or mouse click: open detail
//   - /: search, c: clear search, s: cycle sort, o: toggle order, r: refetch
//   - T: cycle theme (persisted to prefs), ?: help, q: quit
package ui
