package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

const (
	topGames  = 50 // games listed per variant
	cardWidth = 24
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(cardWidth).
			Padding(0, 1)

	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#edc22e"))
)

// variantScores is what the scoreboard knows about one variant.
type variantScores struct {
	variant registry.Variant
	best    int // stored under variant.BestKey; survives cleared history
	stats   storage.Stats
	games   []storage.ScoreEntry
}

func loadVariantScores(store *storage.Store, v registry.Variant) variantScores {
	vs := variantScores{variant: v, stats: storage.Stats{Variant: v.ID}}
	if store == nil {
		return vs
	}
	if best, err := store.BestScore(v.BestKey); err == nil {
		vs.best = best
	}
	if stats, err := store.Stats(v.ID); err == nil {
		vs.stats = *stats
	}
	if games, err := store.TopScores(v.ID, topGames); err == nil {
		vs.games = games
	}
	return vs
}

// scoreboardHelp exposes the scoreboard subset of a KeyMap to bubbles/help.
type scoreboardHelp struct{ KeyMap }

func (k scoreboardHelp) ShortHelp() []key.Binding {
	switchVariant := k.Scoreboard
	switchVariant.SetHelp("tab/←/→", "variant")
	return []key.Binding{k.Up, k.Down, switchVariant, k.Back, k.Quit}
}

func (k scoreboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel shows one card per variant and the best games of the
// selected one.
type ScoreboardModel struct {
	boards []variantScores
	cursor int
	noDB   bool

	table table.Model
	keys  KeyMap
	help  help.Model

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel reads every variant's scores from store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	variants := registry.List()
	boards := make([]variantScores, 0, len(variants))
	for _, v := range variants {
		boards = append(boards, loadVariantScores(store, v))
	}

	m := ScoreboardModel{
		boards: boards,
		noDB:   store == nil,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newGamesTable(height)
	m.showSelected()
	return m
}

func newGamesTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Tile", Width: 6},
			{Title: "Moves", Width: 6},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-14, 4)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#f9f6f2")).
		Background(lipgloss.Color("#8f7a66"))
	t.SetStyles(s)
	return t
}

// showSelected fills the table with the selected variant's games.
func (m *ScoreboardModel) showSelected() {
	var rows []table.Row
	if len(m.boards) > 0 {
		for i, g := range m.boards[m.cursor].games {
			rows = append(rows, table.Row{
				strconv.Itoa(i + 1),
				strconv.Itoa(g.Score),
				strconv.Itoa(g.MaxTile),
				strconv.Itoa(g.Moves),
				g.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.showSelected()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Scoreboard):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-14, 4))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(m.boards))
	for i, vs := range m.boards {
		style := cardStyle
		if i == m.cursor {
			style = activeCardStyle
		}
		cards = append(cards, style.Render(renderCard(vs)), " ")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...)))
	b.WriteString("\n\n")

	switch {
	case m.noDB:
		b.WriteString(centerText(dimStyle.Render("No scores database."), m.width))
	case len(m.boards) == 0 || len(m.boards[m.cursor].games) == 0:
		b.WriteString(centerText(dimStyle.Render("No games recorded yet."), m.width))
	default:
		vs := m.boards[m.cursor]
		b.WriteString(centerText(dimStyle.Render(statsLine(vs.stats)), m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.table.View()))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(scoreboardHelp{m.keys})), m.width))
	return b.String()
}

// renderCard is the per-variant header: title, stored best and game count.
func renderCard(vs variantScores) string {
	games := "no games"
	if vs.stats.Games == 1 {
		games = "1 game"
	} else if vs.stats.Games > 1 {
		games = fmt.Sprintf("%d games", vs.stats.Games)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(vs.variant.Title),
		hudBoxStyle.Render(fmt.Sprintf("BEST %d", vs.best)),
		games,
	)
}

func statsLine(s storage.Stats) string {
	return fmt.Sprintf("avg %.0f  ·  best tile %d  ·  top game %d  ·  last played %s",
		s.AvgScore, s.BestTile, s.HighScore, s.LastPlayed.Format("Jan 02 15:04"))
}

// Selected returns the variant whose games are listed.
func (m ScoreboardModel) Selected() registry.Variant {
	if len(m.boards) == 0 {
		return registry.Variant{}
	}
	return m.boards[m.cursor].variant
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard until the user goes back or quits.
// goBack is false when the user quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
