package engine

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.10

// Source is the randomness used for spawning. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Placement is a tile put on the board by a spawn.
type Placement struct {
	Pos   Pos
	Value int
}

// Spawn places a 2 (90%) or a 4 (10%) on a uniformly chosen empty cell.
// It returns false and the board unchanged when there is no empty cell.
func Spawn(b Board, src Source) (Board, Placement, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Placement{}, false
	}

	p := empty[src.Intn(len(empty))]

	value := 2
	if src.Float64() >= 1-Spawn4Probability {
		value = 4
	}

	return b.With(p, value), Placement{Pos: p, Value: value}, true
}

// SpawnTile is Spawn without the placement details.
func SpawnTile(b Board, src Source) Board {
	next, _, _ := Spawn(b, src)
	return next
}
