// Package registry keeps the playable 2048 variants. Variants share the
// same engine and differ in presentation and in where their best score
// is kept.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Theme selects how tile values are drawn.
type Theme string

const (
	ThemeNumbers  Theme = "numbers"
	ThemeVehicles Theme = "vehicles"
)

// Variant describes one playable flavour of the game.
type Variant struct {
	ID    string
	Title string
	Theme Theme

	// BestKey is the fixed key the best score is stored under.
	BestKey string

	// TrackTiles enables stable tile identities. The renderer uses them to
	// highlight the tiles a move merged.
	TrackTiles bool
}

// ErrUnknownVariant is returned when an ID is not registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Default is the ID used when none is given.
const Default = "2048"

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

func init() {
	Register(Variant{
		ID:         "2048",
		Title:      "2048",
		Theme:      ThemeNumbers,
		BestKey:    "bestScore",
		TrackTiles: true,
	})
	Register(Variant{
		ID:         "2048_vehicles",
		Title:      "2048 Vehicles",
		Theme:      ThemeVehicles,
		BestKey:    "bestScore:vehicles",
		TrackTiles: true,
	})
}

// Register adds a variant.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.BestKey == "" {
		v.BestKey = "bestScore:" + v.ID
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a variant by ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
