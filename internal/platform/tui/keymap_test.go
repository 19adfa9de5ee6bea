package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/engine"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, engine.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, engine.Down},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, engine.Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, engine.Right},
		{"w", runeKey("w"), engine.Up},
		{"a", runeKey("a"), engine.Left},
		{"s", runeKey("s"), engine.Down},
		{"d", runeKey("d"), engine.Right},
		{"k", runeKey("k"), engine.Up},
		{"h", runeKey("h"), engine.Left},
		{"j", runeKey("j"), engine.Down},
		{"l", runeKey("l"), engine.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Direction(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("Direction(%s) = %v, %v; want %v", tt.msg, got, ok, tt.want)
			}
		})
	}
}

func TestKeyMapNonDirectionKeys(t *testing.T) {
	km := DefaultKeyMap()
	for _, s := range []string{"q", "r", "n", "?", "x"} {
		if _, ok := km.Direction(runeKey(s)); ok {
			t.Errorf("%q should not map to a direction", s)
		}
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   engine.Direction
		wantOK bool
	}{
		{"right", 10, 1, engine.Right, true},
		{"left", -10, 2, engine.Left, true},
		{"down", 1, 5, engine.Down, true},
		{"up", -2, -5, engine.Up, true},
		{"tie goes vertical", 4, 2, engine.Down, true},
		{"short vertical still counts", 0, 1, engine.Down, true},
		{"too short", 1, 0, 0, false},
		{"no movement", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SwipeDirection(tt.dx, tt.dy)
			if ok != tt.wantOK {
				t.Fatalf("SwipeDirection(%d, %d) ok = %v, want %v", tt.dx, tt.dy, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SwipeDirection(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestSwipeTracker(t *testing.T) {
	var s swipeTracker

	s, _, ok := s.update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ok || !s.active {
		t.Fatalf("press should start a drag, got ok=%v active=%v", ok, s.active)
	}

	s, _, ok = s.update(tea.MouseMsg{X: 14, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if ok {
		t.Fatal("motion should not finish a swipe")
	}

	s, dir, ok := s.update(tea.MouseMsg{X: 2, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if !ok || dir != engine.Left {
		t.Errorf("release = %v, %v; want left", dir, ok)
	}
	if s.active {
		t.Error("release should end the drag")
	}

	// A release without a press is ignored.
	if _, _, ok := s.update(tea.MouseMsg{X: 30, Y: 6, Action: tea.MouseActionRelease}); ok {
		t.Error("release without press should not swipe")
	}
}
