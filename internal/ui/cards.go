package ui

import (
	"fmt"
	"strings"

	"github.com/ladlekit/ladle/internal/recipes"
)

// Layout constants for the card list.
const (
	headerHeight = 1
	footerHeight = 1

	// cardRows is how many terminal rows one recipe card occupies:
	// three content lines plus a separator.
	cardRows = 4

	// listTop is the first row of the card area.
	listTop = headerHeight
)

// contentHeight returns the rows available to the card list.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < cardRows {
		h = cardRows
	}
	return h
}

// maxVisibleCards returns how many cards fit in the content area.
func (m Model) maxVisibleCards() int {
	n := m.contentHeight() / cardRows
	if n < 1 {
		n = 1
	}
	return n
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	visible := m.maxVisibleCards()
	if m.cursor < m.firstVisible {
		m.firstVisible = m.cursor
	}
	if m.cursor >= m.firstVisible+visible {
		m.firstVisible = m.cursor - visible + 1
	}
	if m.firstVisible < 0 {
		m.firstVisible = 0
	}
}

// cardAt maps a terminal row to the index of the card rendered there.
func (m Model) cardAt(y int) (int, bool) {
	rel := y - listTop
	if rel < 0 {
		return 0, false
	}
	slot := rel / cardRows
	if slot >= m.maxVisibleCards() {
		return 0, false
	}
	idx := m.firstVisible + slot
	if idx >= len(m.result.Recipes) {
		return 0, false
	}
	return idx, true
}

// renderCards renders the card list or, before any page has arrived, the
// loading/error/empty notices that replace it.
func (m Model) renderCards() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	if m.result.Failed() {
		return m.centerNotice(styles.DangerText.Render("Fetch failed: "+m.result.Err), height)
	}
	if m.result.Loading() && len(m.result.Recipes) == 0 {
		return m.centerNotice(m.spin.View()+styles.MutedText.Render(" Fetching recipes..."), height)
	}
	if m.result.Empty() {
		notice := "No recipes found"
		if m.query.Search != "" {
			notice = fmt.Sprintf("No recipes match %q", m.query.Search)
		}
		return m.centerNotice(styles.MutedText.Render(notice), height)
	}

	var lines []string
	visible := m.maxVisibleCards()
	for i := m.firstVisible; i < len(m.result.Recipes) && i < m.firstVisible+visible; i++ {
		lines = append(lines, m.renderCard(m.result.Recipes[i], i == m.cursor)...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

// renderCard renders one recipe card as cardRows lines.
func (m Model) renderCard(r recipes.Recipe, selected bool) []string {
	styles := m.theme.Styles()

	marker := "  "
	nameStyle := styles.Heading
	if selected {
		marker = styles.AccentText.Render("▌ ")
		nameStyle = styles.Selected.Bold(true)
	}

	name := nameStyle.Render(truncate(r.Name, m.width-24))
	badge := styles.DifficultyBadge(r.DifficultyClass()).Render(strings.ToUpper(r.Difficulty))
	rating := styles.WarningText.Render("★ " + r.RatingLabel())
	title := marker + name + " " + badge + " " + rating

	meta := fmt.Sprintf("%s · %d min · %s · %d kcal",
		r.MealTypeLabel(), r.TotalMinutes(), pluralize(r.Servings, "serving"), r.CaloriesPerServing)
	metaLine := "  " + styles.MutedText.Render(truncate(meta, m.width-4))

	imageLine := "  " + styles.FaintText.Render(truncate(r.Image, m.width-4))

	return []string{title, metaLine, imageLine, ""}
}

// centerNotice vertically centers a one-line notice in the content area.
func (m Model) centerNotice(notice string, height int) string {
	lines := make([]string, height)
	mid := height / 2
	pad := (m.width - visibleWidth(notice)) / 2
	if pad < 0 {
		pad = 0
	}
	lines[mid] = strings.Repeat(" ", pad) + notice
	return strings.Join(lines, "\n")
}
