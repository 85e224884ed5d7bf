package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top status bar: logo, active query summary, and
// the loading indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("ladle")}

	if m.query.Search != "" {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf("search %q", m.query.Search)))
	}
	if label := m.query.SortLabel(); label != "Default" {
		arrow := "↑"
		if m.query.Order() == "desc" {
			arrow = "↓"
		}
		parts = append(parts, styles.InfoText.Render("sort "+label+" "+arrow))
	}

	switch {
	case m.result.Loading():
		parts = append(parts, m.spin.View()+styles.MutedText.Render("fetching"))
	case m.result.Failed():
		parts = append(parts, styles.DangerText.Render("ERROR"))
	default:
		parts = append(parts, styles.MutedText.Render(pluralize(m.result.Total, "recipe")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}
