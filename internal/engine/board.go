// Package engine implements the 2048 board rules: sliding and merging
// tiles, spawning new tiles and detecting boards with no moves left.
//
// Every function is pure. Boards are values, so callers always receive a
// fresh copy and never observe a board they hold being mutated.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board is a Size x Size grid of tile values. Zero marks an empty cell,
// any other value is a power of two.
type Board [Size][Size]int

// Pos addresses a single cell.
type Pos struct {
	Row int
	Col int
}

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// ErrInvalidDirection is returned by ParseDirection for unknown names.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names and single-letter shorthands (u, d, l, r).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// At returns the value at p.
func (b Board) At(p Pos) int {
	return b[p.Row][p.Col]
}

// With returns a copy of b with p set to value.
func (b Board) With(p Pos, value int) Board {
	b[p.Row][p.Col] = value
	return b
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(b Board) []Pos {
	var cells []Pos
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, b[r][c])
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += b[r][c]
		}
	}
	return total
}

// String renders the board as right-aligned columns, one row per line.
func (b Board) String() string {
	width := len(strconv.Itoa(MaxTile(b)))
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if b[r][c] != 0 {
				cell = strconv.Itoa(b[r][c])
			}
			sb.WriteString(strings.Repeat(" ", max(0, width-len(cell))))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
