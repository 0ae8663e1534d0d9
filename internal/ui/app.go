package ui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/prefs"
	"github.com/five82/dexter/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *state.Controller
	ThemeName  string
	PrefsPath  string
	Logger     *zap.Logger

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctl       *state.Controller
	logger    *zap.Logger
	prefsPath string
	copyText  func(string) error

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string // transient footer message

	// Data state
	snap state.Snapshot
	grid gridLayout

	// Grid state
	cursor   int
	viewport viewport.Model
	spinner  spinner.Model

	// Search state
	searching     bool
	search        textinput.Model
	suggestionIdx int // -1 when nothing is highlighted
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	theme := GetTheme(themeName)

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search by name"
	input.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:           ctx,
		ctl:           opts.Controller,
		logger:        logger,
		prefsPath:     prefsPath,
		copyText:      copyText,
		keys:          DefaultKeyMap(),
		theme:         theme,
		search:        input,
		spinner:       spin,
		suggestionIdx: -1,
	}
	m.applyTheme()
	if m.ctl != nil {
		m.snap = m.ctl.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.ctl == nil {
		return nil
	}
	return tea.Batch(
		loadCmd(m.ctx, m.ctl, m.ctl.Pending()),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
		}
		m.ready = true
		m.refresh()
		return m, nil

	case loadDoneMsg:
		if errors.Is(msg.err, state.ErrSuperseded) {
			return m, nil
		}
		m.pull()
		if m.snap.Phase == state.PhaseLoaded {
			m.cursor = 0
			m.viewport.GotoTop()
		}
		m.refresh()
		return m, nil

	case lookupDoneMsg:
		if errors.Is(msg.err, state.ErrSuperseded) {
			return m, nil
		}
		m.pull()
		if m.snap.OverlayOpen {
			m.leaveSearch()
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.snap.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.snap.OverlayOpen && m.snap.Selected != nil {
		return m.renderOverlay(*m.snap.Selected)
	}

	return m.renderMain()
}

// handleKey routes a key to the layer that currently has focus: help, the
// overlay, the search box, then the grid.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.snap.OverlayOpen {
		return m.handleOverlayKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", zap.Error(err))
			}
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.enterSearch()

	case key.Matches(msg, m.keys.Generation):
		n := int(msg.Runes[0] - '0')
		gen, err := catalog.GenerationByNumber(n)
		if err != nil {
			return m, nil
		}
		return m.selectGeneration(gen)

	case key.Matches(msg, m.keys.PrevGen):
		return m.selectGeneration(m.snap.Generation.Prev())

	case key.Matches(msg, m.keys.NextGen):
		return m.selectGeneration(m.snap.Generation.Next())

	case key.Matches(msg, m.keys.Reload):
		return m.selectGeneration(m.snap.Generation)

	case key.Matches(msg, m.keys.Escape):
		m.ctl.DismissSuggestions()
		m.ctl.ClearNotice()
		m.pull()
		m.refresh()
		return m, nil
	}

	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.grid.total == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = clamp(m.cursor-1, 0, m.grid.total-1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = clamp(m.cursor+1, 0, m.grid.total-1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.grid.moveVertical(m.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.grid.moveVertical(m.cursor, 1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.grid.total - 1
	case key.Matches(msg, m.keys.PageUp):
		for range max(1, m.viewport.Height/cardHeight) {
			m.cursor = m.grid.moveVertical(m.cursor, -1)
		}
	case key.Matches(msg, m.keys.PageDown):
		for range max(1, m.viewport.Height/cardHeight) {
			m.cursor = m.grid.moveVertical(m.cursor, 1)
		}
	case key.Matches(msg, m.keys.Open):
		rec, ok := m.grid.record(m.cursor)
		if !ok {
			return m, nil
		}
		m.ctl.ClickCard(rec)
		m.pull()
		return m, nil
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		if m.snap.Selected == nil {
			return m, nil
		}
		name := m.snap.Selected.Name
		if err := m.copyText(name); err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(err))
			m.status = "Clipboard unavailable"
		} else {
			m.status = "Copied " + displayName(name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Close):
		m.ctl.DismissOverlay()
		m.pull()
		m.refresh()
		return m, nil
	}
	return m, nil
}

// selectGeneration switches the catalog range and starts its load. The
// spinner tick loop runs while Loading, so a tick is only started on entry.
func (m Model) selectGeneration(gen catalog.Generation) (tea.Model, tea.Cmd) {
	wasLoading := m.snap.Phase == state.PhaseLoading
	req := m.ctl.SelectGeneration(gen)
	m.pull()
	m.cursor = 0
	m.suggestionIdx = -1
	m.viewport.GotoTop()
	m.refresh()
	if wasLoading {
		return m, loadCmd(m.ctx, m.ctl, req)
	}
	return m, tea.Batch(loadCmd(m.ctx, m.ctl, req), m.spinner.Tick)
}

// pull refreshes the local copy of the controller state.
func (m *Model) pull() {
	m.snap = m.ctl.Snapshot()
	if m.suggestionIdx >= len(m.snap.Suggestions) {
		m.suggestionIdx = -1
	}
}

// refresh rebuilds the grid layout and viewport content from the snapshot.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.grid = newGridLayout(m.snap.Groups.Groups(), m.width)
	if m.grid.total == 0 {
		m.cursor = 0
	} else {
		m.cursor = clamp(m.cursor, 0, m.grid.total-1)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-chromeHeight-m.dropdownHeight())
	m.viewport.SetContent(m.renderGrid())
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.grid.total == 0 {
		return
	}
	top := m.grid.lineOf(m.cursor)
	if top-1 < m.viewport.YOffset {
		m.viewport.SetYOffset(top - 1)
	} else if top+cardHeight > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top + cardHeight - m.viewport.Height)
	}
}

func (m *Model) applyTheme() {
	m.search.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Bold(true)
	m.search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
}

// Bubble Tea messages and commands

type loadDoneMsg struct {
	req state.LoadRequest
	err error
}

type lookupDoneMsg struct {
	err error
}

func loadCmd(ctx context.Context, ctl *state.Controller, req state.LoadRequest) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{req: req, err: ctl.Load(ctx, req)}
	}
}

func lookupCmd(ctx context.Context, ctl *state.Controller) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{err: ctl.SubmitSearch(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return errors.New("ui requires a controller")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
