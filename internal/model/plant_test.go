package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIsImmutable(t *testing.T) {
	src := []PlantID{"a", "b", "c"}
	c := NewCatalog(src...)
	src[0] = "x"
	ids := c.IDs()
	ids[1] = "y"

	assert.Equal(t, []PlantID{"a", "b", "c"}, c.IDs())
}

func TestDefaultCatalog(t *testing.T) {
	assert.Equal(t, 8, DefaultCatalog.Len())
	assert.True(t, DefaultCatalog.Contains("plant8.webp"))
	assert.False(t, DefaultCatalog.Contains("plant9.webp"))
}

func TestWithout(t *testing.T) {
	shown := []PlantID{"plant1.webp", "plant2.webp", "plant3.webp", "plant4.webp", "plant5.webp", "plant6.webp"}
	assert.Equal(t, []PlantID{"plant7.webp", "plant8.webp"}, DefaultCatalog.Without(shown))
	assert.Len(t, DefaultCatalog.Without(nil), 8)
}

func TestDisplayedSetIDs(t *testing.T) {
	d := DisplayedSet{Top: []PlantID{"a", "b"}, Bottom: []PlantID{"c"}}
	assert.Equal(t, []PlantID{"a", "b", "c"}, d.IDs())
	assert.Equal(t, 3, d.Len())
}

func TestChoiceSet(t *testing.T) {
	cs := ChoiceSet{{ID: "a"}, {ID: "b", Correct: true}, {ID: "c"}}

	c, ok := cs.Lookup("b")
	assert.True(t, ok)
	assert.True(t, c.Correct)

	_, ok = cs.Lookup("z")
	assert.False(t, ok)

	assert.Equal(t, 1, cs.CorrectCount())
	assert.Equal(t, []PlantID{"a", "b", "c"}, cs.IDs())
}
