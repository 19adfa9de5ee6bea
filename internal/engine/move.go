package engine

// MoveResult is the outcome of applying a direction to a board.
type MoveResult struct {
	Board     Board
	ScoreGain int  // Sum of all merged tile values
	Changed   bool // Whether any cell value differs from the input
}

// Step records where a single tile went during a line slide.
// Indexes are relative to the compaction origin.
type Step struct {
	From     int
	To       int
	Merged   bool // Tile survived a merge and now holds the doubled value
	Consumed bool // Tile was absorbed by the tile ahead of it
}

// LineResult is the outcome of sliding one line toward index 0.
type LineResult struct {
	Values [Size]int
	Gain   int
	Steps  []Step
}

// SlideLine compacts a line toward index 0 and merges adjacent equal
// tiles. A merged tile never merges again in the same pass, so
// [2 2 2 0] becomes [4 2 0 0] and [2 2 4 0] becomes [4 4 0 0].
func SlideLine(line [Size]int) LineResult {
	type tile struct {
		value int
		from  int
	}

	tiles := make([]tile, 0, Size)
	for i, v := range line {
		if v != 0 {
			tiles = append(tiles, tile{value: v, from: i})
		}
	}

	var res LineResult
	write := 0
	for i := 0; i < len(tiles); i++ {
		cur := tiles[i]
		if i+1 < len(tiles) && tiles[i+1].value == cur.value {
			merged := cur.value * 2
			res.Values[write] = merged
			res.Gain += merged
			res.Steps = append(res.Steps,
				Step{From: cur.from, To: write, Merged: true},
				Step{From: tiles[i+1].from, To: write, Consumed: true},
			)
			i++ // skip the consumed tile
		} else {
			res.Values[write] = cur.value
			res.Steps = append(res.Steps, Step{From: cur.from, To: write})
		}
		write++
	}

	return res
}

// Line returns the cells of line k ordered from the compaction origin of
// dir. Rows are lines for Left/Right, columns for Up/Down; Right and Down
// walk their line backwards so every direction reduces to one pass toward
// index 0.
func Line(dir Direction, k int) [Size]Pos {
	var cells [Size]Pos
	for i := range Size {
		switch dir {
		case Left:
			cells[i] = Pos{Row: k, Col: i}
		case Right:
			cells[i] = Pos{Row: k, Col: Size - 1 - i}
		case Up:
			cells[i] = Pos{Row: i, Col: k}
		case Down:
			cells[i] = Pos{Row: Size - 1 - i, Col: k}
		}
	}
	return cells
}

// ApplyMove slides every line of the board in the given direction.
// If nothing moves, the input board is returned untouched with
// Changed == false.
func ApplyMove(b Board, dir Direction) MoveResult {
	if dir < Up || dir > Right {
		return MoveResult{Board: b}
	}

	next := b
	gain := 0
	changed := false

	for k := range Size {
		cells := Line(dir, k)

		var line [Size]int
		for i, p := range cells {
			line[i] = b.At(p)
		}

		res := SlideLine(line)
		gain += res.Gain
		if res.Values != line {
			changed = true
		}

		for i, p := range cells {
			next[p.Row][p.Col] = res.Values[i]
		}
	}

	if !changed {
		return MoveResult{Board: b}
	}
	return MoveResult{Board: next, ScoreGain: gain, Changed: true}
}

// HasPossibleMerge returns true if any two horizontally or vertically
// adjacent tiles hold the same non-zero value.
func HasPossibleMerge(b Board) bool {
	for r := range Size {
		for c := range Size {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if c < Size-1 && b[r][c+1] == v {
				return true
			}
			if r < Size-1 && b[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the board.
func CanMove(b Board) bool {
	return HasEmptyCell(b) || HasPossibleMerge(b)
}

// IsTerminal returns true when the board is full and no adjacent pair
// can merge. Diagonal neighbours do not count.
func IsTerminal(b Board) bool {
	return !CanMove(b)
}
