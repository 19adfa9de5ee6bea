package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/registry"
)

const (
	tileWidth  = 8 // Width of each tile in cells
	tileHeight = 3 // Height of each tile in lines
)

// vehicles is the ladder used by the vehicles theme.
var vehicles = map[int]string{
	2:    "👟",
	4:    "🛴",
	8:    "🚲",
	16:   "🏍️",
	32:   "🚕",
	64:   "🚗",
	128:  "🏎️",
	256:  "🚁",
	512:  "✈️",
	1024: "🚀",
	2048: "🛸",
}

// vehicleBeyond is shown for tiles past the end of the ladder.
const vehicleBeyond = "🌟"

// tileColors maps tile values to background/foreground pairs.
var tileColors = map[int][2]lipgloss.Color{
	0:    {"#cdc1b4", "#776e65"},
	2:    {"#eee4da", "#776e65"},
	4:    {"#ede0c8", "#776e65"},
	8:    {"#f2b179", "#f9f6f2"},
	16:   {"#f59563", "#f9f6f2"},
	32:   {"#f67c5f", "#f9f6f2"},
	64:   {"#f65e3b", "#f9f6f2"},
	128:  {"#edcf72", "#f9f6f2"},
	256:  {"#edcc61", "#f9f6f2"},
	512:  {"#edc850", "#f9f6f2"},
	1024: {"#edc53f", "#f9f6f2"},
	2048: {"#edc22e", "#f9f6f2"},
}

// Colors for tiles beyond 2048.
var superTileColors = [2]lipgloss.Color{"#3c3a32", "#f9f6f2"}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bbada0"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#edc22e"))

	hudBoxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#bbada0")).
			Foreground(lipgloss.Color("#f9f6f2"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#f65e3b")).
			Foreground(lipgloss.Color("#f65e3b"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// TileLabel returns the text drawn on a tile. Empty cells have no label.
func TileLabel(theme registry.Theme, value int) string {
	if value == 0 {
		return ""
	}
	if theme == registry.ThemeVehicles {
		if v, ok := vehicles[value]; ok {
			return v
		}
		return vehicleBeyond
	}
	return strconv.Itoa(value)
}

// Marks are the cells drawn highlighted after a move.
type Marks struct {
	Spawned *engine.Pos
	Merged  []engine.Pos
}

func (mk Marks) spawned(p engine.Pos) bool {
	return mk.Spawned != nil && *mk.Spawned == p
}

func (mk Marks) merged(p engine.Pos) bool {
	for _, m := range mk.Merged {
		if m == p {
			return true
		}
	}
	return false
}

// tileStyle returns the style for a tile of the given value.
func tileStyle(value int, spawned, merged bool) lipgloss.Style {
	colors, ok := tileColors[value]
	if !ok {
		colors = superTileColors
	}

	style := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(colors[0]).
		Foreground(colors[1]).
		Bold(value >= 8)

	if spawned {
		style = style.Underline(true)
	}
	if merged {
		style = style.Reverse(true)
	}
	return style
}

// RenderBoard draws the 4x4 grid. A spawned tile is prefixed with "+" and
// a merged tile with "*".
func RenderBoard(b engine.Board, theme registry.Theme, marks Marks) string {
	rows := make([]string, 0, engine.Size)
	for r := range engine.Size {
		cells := make([]string, 0, engine.Size)
		for c := range engine.Size {
			p := engine.Pos{Row: r, Col: c}
			spawned, merged := marks.spawned(p), marks.merged(p)

			label := TileLabel(theme, b.At(p))
			switch {
			case spawned:
				label = "+" + label
			case merged:
				label = "*" + label
			}
			cells = append(cells, tileStyle(b.At(p), spawned, merged).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderHUD draws the title with the score and best boxes.
func RenderHUD(title string, score, best int) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(title),
		"  ",
		hudBoxStyle.Render(fmt.Sprintf("SCORE %d", score)),
		" ",
		hudBoxStyle.Render(fmt.Sprintf("BEST %d", best)),
	)
}

// RenderGameOver draws the game-over banner.
func RenderGameOver(score int) string {
	return gameOverStyle.Render(fmt.Sprintf("GAME OVER  ·  %d", score))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
