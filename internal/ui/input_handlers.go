package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Search prompt captures all input while active.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	// Detail overlay has its own bindings.
	if m.detailOpen {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = m.theme.Styles().AccentText
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.query.Search == "" {
			return m, nil
		}
		return m.applySearch("")

	case key.Matches(msg, m.keys.CycleSort):
		m.query = m.query.NextSortField()
		m.savePrefs()
		cmd := m.dispatchFetch()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleOrder):
		m.query = m.query.ToggleSortOrder()
		m.savePrefs()
		cmd := m.dispatchFetch()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.dispatchFetch()
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		return m.movePage(-1)

	case key.Matches(msg, m.keys.NextPage):
		return m.movePage(1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.result.Recipes)-1 {
			m.cursor++
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.result.Recipes); n > 0 {
			m.cursor = n - 1
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.openDetail(m.cursor)
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes input to the search prompt. Enter applies the text
// (resetting to page 1), esc cancels without touching the query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m.applySearch(m.searchInput.Value())

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleDetailKey processes keys while the detail overlay is open. Scrolling
// stays inside the overlay; only an explicit close dismisses it.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = m.theme.Styles().AccentText
		m.savePrefs()
		m.refreshDetailContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleMouse processes mouse clicks: a click on a card opens its detail
// overlay; with the overlay open, a click outside its bounds closes it and a
// click inside is contained (never closes).
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.detailOpen {
		if !m.overlayBounds().contains(msg.X, msg.Y) {
			m.closeDetail()
		}
		return m, nil
	}

	if m.searching {
		return m, nil
	}

	if idx, ok := m.cardAt(msg.Y); ok {
		m.cursor = idx
		m.clampScroll()
		m.openDetail(idx)
	}
	return m, nil
}
