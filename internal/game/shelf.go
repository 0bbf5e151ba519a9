package game

import (
	"math/rand"

	"github.com/Makepad-fr/plantetyven/internal/model"
)

const (
	ShelfSize  = 3
	ShownCount = 2 * ShelfSize
)

// Shelve picks ShownCount plants from the catalog in random order and splits
// them over the top and bottom shelves. The catalog is left untouched.
func Shelve(catalog model.Catalog, rng *rand.Rand) (model.DisplayedSet, error) {
	if catalog.Len() < ShownCount {
		return model.DisplayedSet{}, ErrCatalogTooSmall
	}
	ids := catalog.IDs()
	// Fisher-Yates over a copy.
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return model.DisplayedSet{
		Top:    ids[:ShelfSize:ShelfSize],
		Bottom: ids[ShelfSize:ShownCount:ShownCount],
	}, nil
}
