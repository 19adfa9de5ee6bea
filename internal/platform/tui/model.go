package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
	"github.com/vovakirdan/t2048/internal/storage"
	"github.com/vovakirdan/t2048/internal/tracking"
)

// Minimum terminal size that fits the HUD, the board and the help line.
const (
	minWidth  = engine.Size*tileWidth + 2
	minHeight = engine.Size*tileHeight + 8
)

// GameOptions configures a game model.
type GameOptions struct {
	Seed      int64         // 0 = time based
	Source    engine.Source // overrides Seed when set
	SessionID string
	Logger    *log.Logger

	// Initial terminal size; later sizes arrive as tea.WindowSizeMsg.
	Width  int
	Height int

	// Embedded makes the back key return to the caller instead of being ignored.
	Embedded bool
}

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	variant registry.Variant
	game    *session.Session
	store   *storage.Store
	opts    GameOptions
	logger  *log.Logger

	keys  KeyMap
	help  help.Model
	swipe swipeTracker

	width  int
	height int

	// merged holds the cells the last move merged into.
	merged []engine.Pos

	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model and starts the first game.
// store may be nil; the game still works, nothing is remembered.
func NewModel(variant registry.Variant, store *storage.Store, opts GameOptions) Model {
	// Bubble Tea owns the screen, so there is no terminal to log to.
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("variant", variant.ID)

	sopts := session.Options{
		Seed:       opts.Seed,
		Source:     opts.Source,
		BestKey:    variant.BestKey,
		Logger:     logger,
		TrackTiles: variant.TrackTiles,
	}
	// A nil *storage.Store must not become a non-nil interface.
	if store != nil {
		sopts.Store = store
	}

	game := session.New(sopts)
	game.Start()

	return Model{
		variant: variant,
		game:    game,
		store:   store,
		opts:    opts,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var dir engine.Direction
		var ok bool
		m.swipe, dir, ok = m.swipe.update(msg)
		if ok {
			m.move(dir)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.opts.Embedded {
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.game.Start()
		m.merged = nil
		m.scoreSaved = false
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.move(dir)
	}
	return m, nil
}

// move plays one direction and records the game once it is over.
func (m *Model) move(dir engine.Direction) {
	out := m.game.Move(dir)
	if out.Result.Changed {
		m.merged = mergedCells(out.Ops)
	}
	if out.State == session.StateTerminal && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
}

// mergedCells lists where the surviving tile of each merge landed.
func mergedCells(ops []tracking.Op) []engine.Pos {
	var cells []engine.Pos
	for _, op := range ops {
		if op.Merged && !op.Removed {
			cells = append(cells, op.To)
		}
	}
	return cells
}

// saveScore records the finished game. Failures are logged and the game
// continues regardless.
func (m *Model) saveScore() {
	if m.store == nil || m.game.Score() == 0 {
		return
	}

	snap := m.game.Snapshot()
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Variant:   m.variant.ID,
		SessionID: m.opts.SessionID,
		Score:     snap.Score,
		MaxTile:   snap.MaxTile,
		Moves:     snap.Moves,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return m.viewTooSmall()
	}

	snap := m.game.Snapshot()

	marks := Marks{Merged: m.merged}
	if p, ok := m.game.LastSpawn(); ok {
		marks.Spawned = &p.Pos
	}

	var b strings.Builder
	b.WriteString(RenderHUD(m.variant.Title, snap.Score, snap.Best))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(snap.Board, m.variant.Theme, marks))
	b.WriteString("\n")

	if snap.State == session.StateTerminal {
		b.WriteString(RenderGameOver(snap.Score))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("r: try again"))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewTooSmall shows a "window too small" message.
func (m Model) viewTooSmall() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		"Window too small\nPlease resize terminal")
}

// Snapshot returns the state of the current game.
func (m Model) Snapshot() session.Snapshot {
	return m.game.Snapshot()
}

// Merged returns the cells the last move merged into.
func (m Model) Merged() []engine.Pos {
	return m.merged
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single variant.
func Run(variant registry.Variant, store *storage.Store, opts GameOptions) error {
	model := NewModel(variant, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err := p.Run()
	return err
}
