package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 7, 10))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "██████████ 100%", ProgressBar(9, 7, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 0, 1))
}

func TestThemes(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("mono")
	assert.True(t, Current().Mono)
	assert.Equal(t, "-", Current().Shelf)

	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)

	SetTheme("whatever")
	assert.Equal(t, "classic", Current().Name)
}

func TestBoxFramesContent(t *testing.T) {
	out := Box("hei")
	assert.Contains(t, out, "hei")
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}
