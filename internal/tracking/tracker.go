// Package tracking gives tiles stable identities across moves so a
// renderer can follow a specific tile. It sits beside the engine and has
// no influence on board values.
package tracking

import "github.com/vovakirdan/t2048/internal/engine"

// ID identifies a tile for as long as it survives on the board.
// The zero ID means "no tile".
type ID uint64

// Op describes what happened to one tile during a move.
type Op struct {
	ID      ID
	From    engine.Pos
	To      engine.Pos
	Value   int  // Value after the move (doubled for a merge survivor)
	Merged  bool // Tile absorbed its neighbour
	Removed bool // Tile was absorbed and no longer exists
}

// Moved reports whether the tile changed cells.
func (o Op) Moved() bool {
	return o.From != o.To
}

// Tracker keeps an ID for every occupied cell.
type Tracker struct {
	ids  [engine.Size][engine.Size]ID
	next ID
}

// New creates a tracker with no tiles.
func New() *Tracker {
	return &Tracker{}
}

// Reset drops all identities and assigns fresh IDs to every tile on b.
func (t *Tracker) Reset(b engine.Board) {
	t.ids = [engine.Size][engine.Size]ID{}
	for r := range engine.Size {
		for c := range engine.Size {
			if b[r][c] != 0 {
				t.ids[r][c] = t.issue()
			}
		}
	}
}

// At returns the ID of the tile at p, or zero for an empty cell.
func (t *Tracker) At(p engine.Pos) ID {
	return t.ids[p.Row][p.Col]
}

// Place assigns a fresh ID to a newly spawned tile.
func (t *Tracker) Place(p engine.Pos) ID {
	id := t.issue()
	t.ids[p.Row][p.Col] = id
	return id
}

// Apply moves identities the same way engine.ApplyMove moves values.
// before must be the board the move was applied to. A merge keeps the ID
// of the tile nearest the compaction origin; the absorbed tile's ID is
// retired. Apply returns nil and leaves identities alone when the move
// changes nothing.
func (t *Tracker) Apply(before engine.Board, dir engine.Direction) []Op {
	if !engine.ApplyMove(before, dir).Changed {
		return nil
	}

	var next [engine.Size][engine.Size]ID
	var ops []Op

	for k := range engine.Size {
		cells := engine.Line(dir, k)

		var line [engine.Size]int
		for i, p := range cells {
			line[i] = before.At(p)
		}

		res := engine.SlideLine(line)
		for _, step := range res.Steps {
			from := cells[step.From]
			to := cells[step.To]
			id := t.ids[from.Row][from.Col]

			op := Op{
				ID:      id,
				From:    from,
				To:      to,
				Value:   res.Values[step.To],
				Merged:  step.Merged,
				Removed: step.Consumed,
			}
			if step.Consumed {
				op.Value = line[step.From]
			} else {
				next[to.Row][to.Col] = id
			}
			ops = append(ops, op)
		}
	}

	t.ids = next
	return ops
}

func (t *Tracker) issue() ID {
	t.next++
	return t.next
}
