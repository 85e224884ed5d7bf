package ui

import (
	"fmt"
	"strings"
)

// renderFooter renders the bottom bar: the search prompt while searching,
// otherwise pagination controls and key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.searching {
		hint := styles.FaintText.Render("  enter apply · esc cancel")
		return styles.Footer.Width(m.width).Render(m.searchInput.View() + hint)
	}

	var parts []string

	// Pagination controls are hidden when there is a single page or none.
	if totalPages := m.totalPages(); totalPages > 1 {
		prev := "◀"
		if m.query.Page <= 1 {
			prev = styles.FaintText.Render("◀")
		}
		next := "▶"
		if m.query.Page >= totalPages {
			next = styles.FaintText.Render("▶")
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d %s", prev, m.query.Page, totalPages, next))
	}

	parts = append(parts, styles.FaintText.Render(
		"/ search · s sort · o order · enter open · ? help · q quit"))

	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}
