package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	Variant registry.Variant
	Best    int
}

// MenuModel is the Bubble Tea model for the variant picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keys           KeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a variant
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Best scores are read from store
// when it is available.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	variants := registry.List()
	items := make([]MenuItem, 0, len(variants))

	for _, v := range variants {
		item := MenuItem{Variant: v}
		if store != nil {
			if best, err := store.BestScore(v.BestKey); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		line := fmt.Sprintf("%s%-16s best %d", cursor, item.Variant.Title, item.Best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(menuHelp{m.keys})), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID       string
	Width           int
	Height          int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, width, height int) (MenuResult, error) {
	model := NewMenuModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{}
	result.Width, result.Height = m.Size()

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.VariantID = m.Selected().Variant.ID
	} else {
		result.Quit = true
	}

	return result, nil
}
