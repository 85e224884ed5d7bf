package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	next, cmd := m.Update(leftClick(x, y))
	out := next.(Model)
	deliver(t, &out, cmd)
	return out
}

func TestRectContains(t *testing.T) {
	r := rect{x: 10, y: 5, w: 20, h: 8}
	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 8, true},
		{"top_left_corner", 10, 5, true},
		{"bottom_right_inside", 29, 12, true},
		{"right_edge_outside", 30, 8, false},
		{"bottom_edge_outside", 15, 13, false},
		{"left_of", 9, 8, false},
		{"above", 15, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.contains(tc.x, tc.y); got != tc.want {
				t.Fatalf("contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestOverlayBoundsCentered(t *testing.T) {
	m := Model{width: 100, height: 40}
	b := m.overlayBounds()
	if b.w != 80 || b.h != 26 {
		t.Fatalf("bounds = %+v, want 80x26", b)
	}
	if b.x != 10 || b.y != 7 {
		t.Fatalf("bounds origin = (%d, %d), want centered (10, 7)", b.x, b.y)
	}

	small := Model{width: 30, height: 12}
	sb := small.overlayBounds()
	if sb.w != 24 || sb.h != 8 {
		t.Fatalf("small bounds = %+v, want 24x8", sb)
	}
}

func TestMouseClickOpensCard(t *testing.T) {
	fetcher := &stubFetcher{full: catalog(13)}
	m := newTestModel(t, fetcher, nil)

	// Second card starts one cardRows stride below the list top.
	m = click(t, m, 4, listTop+cardRows)
	if !m.detailOpen || m.selected == nil {
		t.Fatalf("click on a card should open its detail overlay")
	}
	if m.selected.Name != "Recipe 02" {
		t.Fatalf("selected = %q, want Recipe 02", m.selected.Name)
	}
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
}

func TestMouseClickOnHeaderIsIgnored(t *testing.T) {
	fetcher := &stubFetcher{full: catalog(13)}
	m := newTestModel(t, fetcher, nil)

	m = click(t, m, 4, 0)
	if m.detailOpen {
		t.Fatalf("click on the header should not open a detail overlay")
	}
}

func TestOverlayClickContainment(t *testing.T) {
	fetcher := &stubFetcher{full: catalog(13)}
	m := newTestModel(t, fetcher, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detailOpen {
		t.Fatalf("enter should open the detail overlay")
	}

	// A click inside the overlay's content region must not close it.
	b := m.overlayBounds()
	m = click(t, m, b.x+b.w/2, b.y+b.h/2)
	if !m.detailOpen {
		t.Fatalf("click inside the overlay closed it")
	}

	// A click on the backdrop closes it.
	m = click(t, m, 0, 0)
	if m.detailOpen {
		t.Fatalf("click outside the overlay should close it")
	}
}

func TestOverlayIgnoresNonLeftPress(t *testing.T) {
	fetcher := &stubFetcher{full: catalog(13)}
	m := newTestModel(t, fetcher, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	msg := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	next, _ := m.Update(msg)
	m = next.(Model)
	if !m.detailOpen {
		t.Fatalf("mouse motion should not close the overlay")
	}
}
