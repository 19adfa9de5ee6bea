package tracking

import (
	"testing"

	"github.com/vovakirdan/t2048/internal/engine"
)

func TestResetAssignsUniqueIDs(t *testing.T) {
	board := engine.Board{
		{2, 0, 0, 4},
		{0, 8, 0, 0},
	}

	tr := New()
	tr.Reset(board)

	seen := map[ID]bool{}
	for r := range engine.Size {
		for c := range engine.Size {
			id := tr.At(engine.Pos{Row: r, Col: c})
			if board[r][c] == 0 {
				if id != 0 {
					t.Errorf("empty cell {%d %d} has ID %d", r, c, id)
				}
				continue
			}
			if id == 0 {
				t.Errorf("tile at {%d %d} has no ID", r, c)
			}
			if seen[id] {
				t.Errorf("duplicate ID %d", id)
			}
			seen[id] = true
		}
	}
}

func TestApplyFollowsSlides(t *testing.T) {
	board := engine.Board{
		{0, 0, 2, 0},
	}

	tr := New()
	tr.Reset(board)
	id := tr.At(engine.Pos{Row: 0, Col: 2})

	ops := tr.Apply(board, engine.Left)
	if len(ops) != 1 {
		t.Fatalf("ops = %+v, want 1", ops)
	}
	if ops[0].ID != id || ops[0].To != (engine.Pos{Row: 0, Col: 0}) || !ops[0].Moved() {
		t.Errorf("op = %+v", ops[0])
	}
	if tr.At(engine.Pos{Row: 0, Col: 0}) != id {
		t.Error("ID should follow the tile to its new cell")
	}
	if tr.At(engine.Pos{Row: 0, Col: 2}) != 0 {
		t.Error("old cell should be empty after the slide")
	}
}

func TestApplyMergeKeepsSurvivorID(t *testing.T) {
	board := engine.Board{
		{2, 2, 2, 0},
	}

	tr := New()
	tr.Reset(board)
	first := tr.At(engine.Pos{Row: 0, Col: 0})
	second := tr.At(engine.Pos{Row: 0, Col: 1})
	third := tr.At(engine.Pos{Row: 0, Col: 2})

	ops := tr.Apply(board, engine.Left)

	var merged, removed int
	for _, op := range ops {
		switch {
		case op.Merged:
			merged++
			if op.ID != first || op.Value != 4 {
				t.Errorf("merge survivor = %+v, want ID %d value 4", op, first)
			}
		case op.Removed:
			removed++
			if op.ID != second || op.Value != 2 {
				t.Errorf("removed tile = %+v, want ID %d value 2", op, second)
			}
		}
	}
	if merged != 1 || removed != 1 {
		t.Errorf("merged=%d removed=%d, want 1 and 1", merged, removed)
	}

	if tr.At(engine.Pos{Row: 0, Col: 0}) != first {
		t.Error("survivor should keep its ID")
	}
	if tr.At(engine.Pos{Row: 0, Col: 1}) != third {
		t.Error("trailing tile should slide into column 1 with its ID")
	}
}

func TestApplyMergeRightKeepsEdgeTile(t *testing.T) {
	board := engine.Board{
		{0, 0, 2, 2},
	}

	tr := New()
	tr.Reset(board)
	edge := tr.At(engine.Pos{Row: 0, Col: 3})

	tr.Apply(board, engine.Right)

	if tr.At(engine.Pos{Row: 0, Col: 3}) != edge {
		t.Error("moving right, the tile nearest the right edge survives the merge")
	}
	if tr.At(engine.Pos{Row: 0, Col: 2}) != 0 {
		t.Error("column 2 should be empty after the merge")
	}
}

func TestApplyNoopKeepsIdentities(t *testing.T) {
	board := engine.Board{
		{4, 2, 0, 0},
	}

	tr := New()
	tr.Reset(board)
	before := tr.At(engine.Pos{Row: 0, Col: 1})

	if ops := tr.Apply(board, engine.Left); ops != nil {
		t.Errorf("no-op move produced ops: %+v", ops)
	}
	if tr.At(engine.Pos{Row: 0, Col: 1}) != before {
		t.Error("no-op move should keep identities")
	}
}

func TestPlaceIssuesFreshIDs(t *testing.T) {
	tr := New()
	tr.Reset(engine.Board{{2}})

	a := tr.Place(engine.Pos{Row: 3, Col: 3})
	b := tr.Place(engine.Pos{Row: 2, Col: 2})

	if a == 0 || b == 0 || a == b {
		t.Errorf("Place returned %d and %d", a, b)
	}
	if a == tr.At(engine.Pos{Row: 0, Col: 0}) {
		t.Error("spawned tile reused an existing ID")
	}
}
