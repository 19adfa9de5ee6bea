package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/engine"
)

// KeyMap holds every key binding used by the game and menu screens.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NewGame    key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, WASD and hjkl move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r", "new game"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NewGame, k.Back, k.Help, k.Quit},
	}
}

// Direction maps a key message to a move direction.
func (k KeyMap) Direction(msg tea.KeyMsg) (engine.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return engine.Up, true
	case key.Matches(msg, k.Down):
		return engine.Down, true
	case key.Matches(msg, k.Left):
		return engine.Left, true
	case key.Matches(msg, k.Right):
		return engine.Right, true
	}
	return 0, false
}

// menuHelp exposes the menu subset of a KeyMap to bubbles/help.
type menuHelp struct{ KeyMap }

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MinSwipeDistance is the shortest drag, in cells, that counts as a swipe.
const MinSwipeDistance = 2

// cellAspect approximates how much taller a terminal cell is than wide.
const cellAspect = 2

// SwipeDirection turns a drag from press to release into a direction.
// The dominant axis wins; a tie goes to the vertical axis. Terminal rows
// grow downward, so a positive dy is Down.
func SwipeDirection(dx, dy int) (engine.Direction, bool) {
	adx := abs(dx)
	ady := abs(dy) * cellAspect
	if adx < MinSwipeDistance && ady < MinSwipeDistance {
		return 0, false
	}

	if adx > ady {
		if dx > 0 {
			return engine.Right, true
		}
		return engine.Left, true
	}
	if dy > 0 {
		return engine.Down, true
	}
	return engine.Up, true
}

// swipeTracker remembers where a left-button drag started.
type swipeTracker struct {
	x, y   int
	active bool
}

// update feeds a mouse event and reports a finished swipe.
func (s swipeTracker) update(msg tea.MouseMsg) (swipeTracker, engine.Direction, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return s, 0, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return swipeTracker{x: msg.X, y: msg.Y, active: true}, 0, false
	case tea.MouseActionRelease:
		if !s.active {
			return s, 0, false
		}
		dir, ok := SwipeDirection(msg.X-s.x, msg.Y-s.y)
		return swipeTracker{}, dir, ok
	}
	return s, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
