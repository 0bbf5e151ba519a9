package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "data.json")
	s, err := New(p)
	require.NoError(t, err)

	_, ok, err := s.Get("plantStreak")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("plantStreak", "4"))
	require.NoError(t, s.Set("other", "x"))

	again, err := New(p)
	require.NoError(t, err)
	v, ok, err := again.Get("plantStreak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plantStreak":"4","other":"x"}`, string(b))
}

func TestCorruptFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o644))
	s, err := New(p)
	require.NoError(t, err)
	_, _, err = s.Get("plantStreak")
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, filepath.Base(s.Path()))
}

func TestNonStringValues(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"plantStreak": 3, "sound": true, "name": "kat"}`), 0o644))
	s, err := New(p)
	require.NoError(t, err)

	v, ok, err := s.Get("plantStreak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, s.Set("plantStreak", "4"))
	v, _, err = s.Get("plantStreak")
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	v, _, err = s.Get("sound")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
	v, _, err = s.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "kat", v)
}
