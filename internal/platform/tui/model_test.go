package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
	"github.com/vovakirdan/t2048/internal/storage"
)

func classic(t *testing.T) registry.Variant {
	t.Helper()
	v, err := registry.Get(registry.Default)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// firstCell always spawns a 2 on the first empty cell in row-major order.
type firstCell struct{}

func (firstCell) Intn(int) int     { return 0 }
func (firstCell) Float64() float64 { return 0 }

func TestModelHighlightsMergedTile(t *testing.T) {
	tests := []struct {
		variant    string
		mergeLabel string
		spawnLabel string
	}{
		{"2048", "*4", "+2"},
		{"2048_vehicles", "*🛴", "+👟"},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			v, err := registry.Get(tt.variant)
			if err != nil {
				t.Fatal(err)
			}
			var m tea.Model = NewModel(v, nil, GameOptions{Source: firstCell{}})
			if got := m.(Model).Snapshot().Board[0]; got != [engine.Size]int{2, 2, 0, 0} {
				t.Fatalf("start row = %v, want [2 2 0 0]", got)
			}

			// 2 2 . . slides left into 4 at the first cell.
			m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
			want := []engine.Pos{{Row: 0, Col: 0}}
			if got := m.(Model).Merged(); !slices.Equal(got, want) {
				t.Fatalf("Merged() = %v, want %v", got, want)
			}
			view := m.View()
			for _, label := range []string{tt.mergeLabel, tt.spawnLabel} {
				if !strings.Contains(view, label) {
					t.Errorf("view missing %q:\n%s", label, view)
				}
			}

			// 4 2 . . sliding down merges nothing.
			m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
			if got := m.(Model).Merged(); len(got) != 0 {
				t.Errorf("Merged() after a plain slide = %v, want none", got)
			}
			if strings.Contains(m.View(), tt.mergeLabel) {
				t.Error("merge highlight should clear after the next move")
			}
		})
	}
}

func TestModelNewGameClearsMergeHighlight(t *testing.T) {
	var m tea.Model = NewModel(classic(t), nil, GameOptions{Source: firstCell{}})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(m.(Model).Merged()) == 0 {
		t.Fatal("left should merge the opening pair")
	}

	m = press(t, m, runeKey("r"))
	if got := m.(Model).Merged(); len(got) != 0 {
		t.Errorf("Merged() after new game = %v, want none", got)
	}
}

func TestModelStartsPlaying(t *testing.T) {
	m := NewModel(classic(t), nil, GameOptions{Seed: 1})

	snap := m.Snapshot()
	if snap.State != session.StatePlaying {
		t.Errorf("state = %s, want playing", snap.State)
	}
	tiles := 0
	for _, row := range snap.Board {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("new game has %d tiles, want 2", tiles)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(classic(t), nil, GameOptions{Seed: 1})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	standalone := press(t, NewModel(classic(t), nil, GameOptions{Seed: 1}), tea.KeyMsg{Type: tea.KeyEsc})
	if standalone.(Model).BackToMenu() {
		t.Error("standalone game should ignore back")
	}

	embedded := press(t, NewModel(classic(t), nil, GameOptions{Seed: 1, Embedded: true}), tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.(Model).BackToMenu() {
		t.Error("embedded game should go back to the menu")
	}
}

func TestModelMovesAndNewGame(t *testing.T) {
	var m tea.Model = NewModel(classic(t), nil, GameOptions{Seed: 7})

	keys := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
	}
	for range 10 {
		m = press(t, m, keys...)
	}
	if m.(Model).Snapshot().Moves == 0 {
		t.Fatal("forty key presses should move at least once")
	}

	m = press(t, m, runeKey("r"))
	snap := m.(Model).Snapshot()
	if snap.Moves != 0 || snap.Score != 0 {
		t.Errorf("after new game: moves=%d score=%d", snap.Moves, snap.Score)
	}
}

func TestModelMouseSwipe(t *testing.T) {
	var m tea.Model = NewModel(classic(t), nil, GameOptions{Seed: 3})

	swipes := [][2]int{{20, 0}, {0, 5}, {-20, 0}, {0, -5}}
	for range 10 {
		for _, d := range swipes {
			m = press(t, m,
				tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
				tea.MouseMsg{X: 40 + d[0], Y: 10 + d[1], Action: tea.MouseActionRelease},
			)
		}
	}
	if m.(Model).Snapshot().Moves == 0 {
		t.Error("swipes should move tiles")
	}
}

func TestModelSavesFinishedGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var m tea.Model = NewModel(classic(t), store, GameOptions{Seed: 11, SessionID: "test-session"})
	keys := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
	}
	for i := 0; i < 5000 && m.(Model).Snapshot().State == session.StatePlaying; i++ {
		m = press(t, m, keys[i%len(keys)])
	}

	snap := m.(Model).Snapshot()
	if snap.State != session.StateTerminal {
		t.Fatal("game never ended")
	}

	scores, err := store.TopScores(registry.Default, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d saved games, want 1", len(scores))
	}
	if scores[0].Score != snap.Score || scores[0].SessionID != "test-session" || scores[0].MaxTile != snap.MaxTile {
		t.Errorf("saved %+v, snapshot %+v", scores[0], snap)
	}

	best, err := store.BestScore(classic(t).BestKey)
	if err != nil {
		t.Fatal(err)
	}
	if best != snap.Score {
		t.Errorf("best = %d, want %d", best, snap.Score)
	}

	// Further keys after game over must not record the game twice.
	m = press(t, m, keys...)
	scores, _ = store.TopScores(registry.Default, 10)
	if len(scores) != 1 {
		t.Errorf("game recorded %d times", len(scores))
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(classic(t), nil, GameOptions{Seed: 1})

	view := m.View()
	for _, want := range []string{"SCORE 0", "BEST 0", "2048"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	small := press(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(small.View(), "Window too small") {
		t.Error("small window should show a resize hint")
	}
}

func TestTileLabel(t *testing.T) {
	tests := []struct {
		theme registry.Theme
		value int
		want  string
	}{
		{registry.ThemeNumbers, 0, ""},
		{registry.ThemeNumbers, 2, "2"},
		{registry.ThemeNumbers, 4096, "4096"},
		{registry.ThemeVehicles, 0, ""},
		{registry.ThemeVehicles, 2, "👟"},
		{registry.ThemeVehicles, 1024, "🚀"},
		{registry.ThemeVehicles, 2048, "🛸"},
		{registry.ThemeVehicles, 4096, "🌟"},
	}

	for _, tt := range tests {
		if got := TileLabel(tt.theme, tt.value); got != tt.want {
			t.Errorf("TileLabel(%s, %d) = %q, want %q", tt.theme, tt.value, got, tt.want)
		}
	}
}

func TestSessionModelFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, SessionConfig{ID: "abc", Seed: 1, Width: 100, Height: 40})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(SessionModel).screen; got != screenGame {
		t.Fatalf("after enter screen = %d, want game", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.(SessionModel).screen; got != screenMenu {
		t.Fatalf("after esc screen = %d, want menu", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.(SessionModel).screen; got != screenScores {
		t.Fatalf("after tab screen = %d, want scores", got)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.(SessionModel).screen; got != screenMenu {
		t.Fatalf("after esc screen = %d, want menu", got)
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q in the menu should quit the session")
	}
}
