package model

// Plant identifiers are the image filenames of the catalog, e.g. "plant3.webp".
type PlantID = string

// Catalog is the fixed universe of plants a round draws from.
// Kept unexported so callers can't mutate it; IDs hands out copies.
type Catalog struct {
	ids []PlantID
}

// DefaultCatalog is the eight-plant shelf stock.
var DefaultCatalog = NewCatalog(
	"plant1.webp",
	"plant2.webp",
	"plant3.webp",
	"plant4.webp",
	"plant5.webp",
	"plant6.webp",
	"plant7.webp",
	"plant8.webp",
)

func NewCatalog(ids ...PlantID) Catalog {
	c := make([]PlantID, len(ids))
	copy(c, ids)
	return Catalog{ids: c}
}

func (c Catalog) IDs() []PlantID {
	out := make([]PlantID, len(c.ids))
	copy(out, c.ids)
	return out
}

func (c Catalog) Len() int { return len(c.ids) }

func (c Catalog) Contains(id PlantID) bool {
	for _, x := range c.ids {
		if x == id {
			return true
		}
	}
	return false
}

// Without returns the catalog ids not present in exclude, in catalog order.
func (c Catalog) Without(exclude []PlantID) []PlantID {
	skip := make(map[PlantID]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	var out []PlantID
	for _, id := range c.ids {
		if _, ok := skip[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// DisplayedSet is what the player sees on the two shelves.
type DisplayedSet struct {
	Top    []PlantID `json:"top" yaml:"top"`
	Bottom []PlantID `json:"bottom" yaml:"bottom"`
}

// IDs returns the top shelf followed by the bottom shelf.
func (d DisplayedSet) IDs() []PlantID {
	out := make([]PlantID, 0, len(d.Top)+len(d.Bottom))
	out = append(out, d.Top...)
	return append(out, d.Bottom...)
}

func (d DisplayedSet) Len() int { return len(d.Top) + len(d.Bottom) }
