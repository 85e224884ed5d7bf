// Package ui provides the Bubble Tea terminal interface for Ladle.
package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladlekit/ladle/internal/browse"
	"github.com/ladlekit/ladle/internal/config"
	"github.com/ladlekit/ladle/internal/prefs"
	"github.com/ladlekit/ladle/internal/recipes"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    recipes.Fetcher
	Config    *config.Config
	Query     browse.Query
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    recipes.Fetcher
	cfg       *config.Config
	prefsPath string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Query/result state
	query    browse.Query
	result   browse.Result
	full     []recipes.Recipe // client-paginated cache of the complete set
	fetchSeq uint64           // generation token for in-flight fetches

	// Card list state
	cursor       int
	firstVisible int

	// Detail overlay state
	detailOpen     bool
	selected       *recipes.Recipe
	detailViewport viewport.Model

	// Search prompt state
	searching   bool
	searchInput textinput.Model

	// Loading indicator
	spin spinner.Model

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	query := opts.Query
	if query.Page < 1 {
		query.Page = 1
	}

	theme := GetTheme(themeName)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Styles().AccentText

	input := textinput.New()
	input.Placeholder = "search recipes"
	input.Prompt = "/"
	input.CharLimit = 120

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		cfg:         opts.Config,
		prefsPath:   prefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		query:       query,
		spin:        spin,
		searchInput: input,
	}
}

// Messages

// pageMsg delivers a completed fetch tagged with its generation token.
type pageMsg struct {
	seq  uint64
	page recipes.Page
}

// fetchErrMsg delivers a failed fetch tagged with its generation token.
type fetchErrMsg struct {
	seq uint64
	err error
}

// Commands

func fetchPageCmd(ctx context.Context, client recipes.Fetcher, query recipes.Query, seq uint64) tea.Cmd {
	return func() tea.Msg {
		page, err := client.FetchPage(ctx, query)
		if err != nil {
			return fetchErrMsg{seq: seq, err: err}
		}
		return pageMsg{seq: seq, page: page}
	}
}

func fetchAllCmd(ctx context.Context, client recipes.Fetcher, query recipes.Query, seq uint64) tea.Cmd {
	return func() tea.Msg {
		page, err := client.FetchAll(ctx, query)
		if err != nil {
			return fetchErrMsg{seq: seq, err: err}
		}
		return pageMsg{seq: seq, page: page}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// The initial fetch is dispatched on the first WindowSizeMsg so the
	// generation token bump survives in the stored model.
	return tea.EnterAltScreen
}

// dispatchFetch derives request parameters from the current query and issues
// exactly one fetch command. Every query change funnels through here. The
// command carries the new generation token so stale completions can be told
// apart from the latest attempt.
func (m *Model) dispatchFetch() tea.Cmd {
	m.fetchSeq++
	m.result = m.result.StartLoading()

	req := recipes.Query{
		Limit:  m.pageSize(),
		Skip:   browse.Skip(m.query.Page, m.pageSize()),
		Search: m.query.Search,
		SortBy: m.query.SortBy(),
		Order:  m.query.Order(),
	}

	if m.clientPaginated() {
		m.full = nil
		return tea.Batch(m.spin.Tick, fetchAllCmd(m.ctx, m.client, req, m.fetchSeq))
	}
	return tea.Batch(m.spin.Tick, fetchPageCmd(m.ctx, m.client, req, m.fetchSeq))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		if !m.ready {
			m.initDetailViewport()
			// Initial mount: the first fetch fires here.
			cmd = m.dispatchFetch()
		}
		m.ready = true
		m.resizeDetailViewport()
		m.clampScroll()
		return m, cmd

	case pageMsg:
		if msg.seq != m.fetchSeq {
			// Superseded fetch; a newer attempt owns the result state.
			return m, nil
		}
		m.applyPage(msg.page)
		return m, nil

	case fetchErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.result = m.result.Fail(msg.err)
		m.full = nil
		m.cursor = 0
		m.firstVisible = 0
		return m, nil

	case spinner.TickMsg:
		if !m.result.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// applyPage replaces the result state wholesale with a fetched page. In the
// client-paginated variant the payload is the full result set and the
// visible page is sliced locally.
func (m *Model) applyPage(page recipes.Page) {
	if m.clientPaginated() {
		m.full = page.Recipes
		m.result = browse.Result{
			Phase:   browse.PhaseOK,
			Recipes: browse.Slice(m.full, m.query.Page, m.pageSize()),
			Total:   len(m.full),
		}
	} else {
		m.result = m.result.Succeed(page)
	}
	m.clampCursor()
}

// reslice recomputes the visible page from the cached full set without a
// network round trip. Client-paginated variant only.
func (m *Model) reslice() {
	m.result.Recipes = browse.Slice(m.full, m.query.Page, m.pageSize())
	m.clampCursor()
}

func (m Model) pageSize() int {
	if m.cfg != nil && m.cfg.PageSize > 0 {
		return m.cfg.PageSize
	}
	return 6
}

func (m Model) clientPaginated() bool {
	return m.cfg != nil && m.cfg.Pagination == config.PaginationClient
}

func (m Model) totalPages() int {
	return browse.TotalPages(m.result.Total, m.pageSize())
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.result.Recipes) {
		m.cursor = len(m.result.Recipes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

// movePage shifts the current page by delta, honoring the clamp laws. In the
// client-paginated variant a page move with a warm cache is purely local.
func (m Model) movePage(delta int) (Model, tea.Cmd) {
	next := browse.ClampPage(m.query.Page+delta, m.totalPages())
	if next == m.query.Page {
		return m, nil
	}
	m.query.Page = next
	m.cursor = 0
	m.firstVisible = 0
	if m.clientPaginated() && m.result.Phase == browse.PhaseOK {
		m.reslice()
		return m, nil
	}
	cmd := m.dispatchFetch()
	return m, cmd
}

// applySearch installs new search text (page resets to 1) and refetches.
func (m Model) applySearch(text string) (Model, tea.Cmd) {
	m.query = m.query.WithSearch(text)
	m.cursor = 0
	m.firstVisible = 0
	cmd := m.dispatchFetch()
	return m, cmd
}

// savePrefs persists the theme and sort choice. Failures are logged and
// otherwise ignored; preferences never interrupt browsing.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{
		Theme:     m.theme.Name,
		SortField: m.query.SortBy(),
		SortOrder: m.query.Order(),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.detailOpen && m.selected != nil {
		return m.renderDetailOverlay()
	}

	return m.renderMain()
}

// renderMain renders the browsing view: header, card list, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
