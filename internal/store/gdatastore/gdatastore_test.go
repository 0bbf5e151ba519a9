package gdatastore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	appName := fmt.Sprintf("plantetyven_test_%d", time.Now().UnixNano())
	s, err := Open(appName)
	if err != nil {
		t.Skipf("gdata unavailable here: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("plantStreak")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("plantStreak", "12"))
	v, ok, err := s.Get("plantStreak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}
