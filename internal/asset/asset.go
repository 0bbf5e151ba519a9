// Package asset maps plant ids to their image paths and terminal sprites.
package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/plantetyven/internal/model"
)

//go:embed sprites.yaml
var spritesYAML []byte

// ImageDir is where the web build keeps the plant images.
const ImageDir = "images"

var ErrNoSprite = errors.New("no sprite for plant")

type Sprite struct {
	ID    model.PlantID `yaml:"id"`
	Name  string        `yaml:"name"`
	Color string        `yaml:"color"`
	Glyph []string      `yaml:"glyph"`
}

type manifest struct {
	Plants []Sprite `yaml:"plants"`
}

// Catalog resolves assets for plant ids.
type Catalog struct {
	sprites map[model.PlantID]Sprite
}

// Load parses the embedded sprite manifest.
func Load() (*Catalog, error) {
	return Parse(spritesYAML)
}

func Parse(b []byte) (*Catalog, error) {
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse sprites: %w", err)
	}
	c := &Catalog{sprites: make(map[model.PlantID]Sprite, len(m.Plants))}
	for _, s := range m.Plants {
		c.sprites[s.ID] = s
	}
	return c, nil
}

// Path is the image resource for id.
func (c *Catalog) Path(id model.PlantID) string {
	return path.Join(ImageDir, id)
}

func (c *Catalog) Sprite(id model.PlantID) (Sprite, error) {
	s, ok := c.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %s", ErrNoSprite, id)
	}
	return s, nil
}

// Lazy defers sprite lookups until a plant is first drawn, like the web
// build's intersection observer, and caches the result.
type Lazy struct {
	src    *Catalog
	mu     sync.Mutex
	loaded map[model.PlantID]Sprite
	loads  int
}

func NewLazy(src *Catalog) *Lazy {
	return &Lazy{src: src, loaded: map[model.PlantID]Sprite{}}
}

// Visible reports that id is on screen and returns its sprite.
func (l *Lazy) Visible(id model.PlantID) (Sprite, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.loaded[id]; ok {
		return s, true
	}
	s, err := l.src.Sprite(id)
	if err != nil {
		return Sprite{}, false
	}
	l.loads++
	l.loaded[id] = s
	return s, true
}

// Loads counts how many distinct sprites were fetched.
func (l *Lazy) Loads() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads
}
