package ui

import (
	"fmt"
	"strings"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Browse", [][2]string{
			{"j/↓ k/↑", "Move between cards"},
			{"g / G", "First / last card"},
			{"←/h →/l", "Previous / next page"},
			{"enter", "Open recipe detail"},
			{"click", "Open clicked recipe"},
		}},
		{"Query", [][2]string{
			{"/", "Search recipes"},
			{"c", "Clear search"},
			{"s", "Cycle sort (name, rating, difficulty)"},
			{"o", "Toggle sort order"},
			{"r", "Refetch current page"},
		}},
		{"Detail", [][2]string{
			{"↑/↓", "Scroll"},
			{"esc", "Close overlay"},
			{"click outside", "Close overlay"},
		}},
		{"General", [][2]string{
			{"T", "Cycle theme"},
			{"?", "Toggle this help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("ladle"))
	b.WriteString(styles.MutedText.Render("  —  recipe browser key bindings"))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(strings.ToUpper(section.title)))
		b.WriteString("\n")
		for _, row := range section.rows {
			fmt.Fprintf(&b, "  %s %s\n",
				styles.InfoText.Render(fmt.Sprintf("%-14s", row[0])),
				styles.Text.Render(row[1]))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("press any key to close"))
	return b.String()
}
