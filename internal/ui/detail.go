package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/ladlekit/ladle/internal/recipes"
)

// rect is a screen-space rectangle used to hit-test the detail overlay.
type rect struct {
	x, y, w, h int
}

// contains reports whether the cell (x, y) falls inside the rectangle.
func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// overlayBounds returns the screen rectangle of the detail overlay, centered
// in the terminal. Clicks are contained by this rectangle: inside scrolls or
// is ignored, outside closes the overlay.
func (m Model) overlayBounds() rect {
	w := m.width - 6
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 4
	if h > 26 {
		h = 26
	}
	if h < 8 {
		h = 8
	}
	return rect{
		x: (m.width - w) / 2,
		y: (m.height - h) / 2,
		w: w,
		h: h,
	}
}

func (m *Model) initDetailViewport() {
	b := m.overlayBounds()
	m.detailViewport = viewport.New(b.w-4, b.h-5)
}

func (m *Model) resizeDetailViewport() {
	b := m.overlayBounds()
	m.detailViewport.Width = b.w - 4
	m.detailViewport.Height = b.h - 5
	m.refreshDetailContent()
}

// openDetail selects the card at idx and opens the overlay.
func (m *Model) openDetail(idx int) {
	if idx < 0 || idx >= len(m.result.Recipes) {
		return
	}
	r := m.result.Recipes[idx]
	m.selected = &r
	m.detailOpen = true
	m.resizeDetailViewport()
	m.detailViewport.GotoTop()
}

// closeDetail clears the selection; the overlay owns no other state.
func (m *Model) closeDetail() {
	m.detailOpen = false
	m.selected = nil
}

func (m *Model) refreshDetailContent() {
	if m.selected == nil {
		return
	}
	m.detailViewport.SetContent(m.buildDetailBody(*m.selected))
}

// buildDetailBody renders the full recipe record. Ingredients and
// instructions keep their provider order, numbered.
func (m Model) buildDetailBody(r recipes.Recipe) string {
	styles := m.theme.Styles()
	var b strings.Builder

	writeSection := func(title string) {
		fmt.Fprintf(&b, "\n%s\n", styles.AccentText.Render(strings.ToUpper(title)))
		fmt.Fprintf(&b, "%s\n", styles.FaintText.Render(strings.Repeat("─", 32)))
	}

	fmt.Fprintf(&b, "%s  %s\n", styles.WarningText.Render("★ "+r.RatingLabel()),
		styles.MutedText.Render(pluralize(r.ReviewCount, "review")))
	if r.Cuisine != "" {
		fmt.Fprintf(&b, "%s\n", styles.Text.Render(r.Cuisine+" cuisine"))
	}
	if label := r.MealTypeLabel(); label != "" {
		fmt.Fprintf(&b, "%s\n", styles.MutedText.Render(label))
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "%s\n", styles.FaintText.Render(strings.Join(r.Tags, " · ")))
	}

	writeSection("At a glance")
	fmt.Fprintf(&b, "Prep      %s\n", formatMinutes(r.PrepTimeMinutes))
	fmt.Fprintf(&b, "Cook      %s\n", formatMinutes(r.CookTimeMinutes))
	fmt.Fprintf(&b, "Servings  %d\n", r.Servings)
	fmt.Fprintf(&b, "Calories  %d kcal per serving\n", r.CaloriesPerServing)
	fmt.Fprintf(&b, "Image     %s\n", styles.FaintText.Render(r.Image))

	writeSection("Ingredients")
	for i, ing := range r.Ingredients {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, ing)
	}

	writeSection("Instructions")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, step)
	}

	return b.String()
}

// renderDetailOverlay draws the centered detail overlay over a blank
// backdrop. The backdrop remains clickable: a press outside the overlay
// rectangle closes it.
func (m Model) renderDetailOverlay() string {
	if m.selected == nil {
		return m.renderMain()
	}
	styles := m.theme.Styles()
	b := m.overlayBounds()

	title := styles.Heading.Render(truncate(m.selected.Name, b.w-16)) + " " +
		styles.DifficultyBadge(m.selected.DifficultyClass()).Render(strings.ToUpper(m.selected.Difficulty))
	hint := styles.FaintText.Render("↑/↓ scroll · esc close")

	inner := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.FaintText.Render(strings.Repeat("─", b.w-4)),
		m.detailViewport.View(),
		hint,
	)

	box := styles.Overlay.Width(b.w - 2).Render(inner)

	// Manual placement keeps the rendered position in lockstep with
	// overlayBounds, which the mouse hit-testing relies on.
	var out strings.Builder
	for i := 0; i < b.y; i++ {
		out.WriteString("\n")
	}
	indent := strings.Repeat(" ", b.x)
	for _, line := range strings.Split(box, "\n") {
		out.WriteString(indent)
		out.WriteString(line)
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}
