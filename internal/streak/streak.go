// Package streak keeps the count of consecutive correct rounds.
package streak

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Makepad-fr/plantetyven/internal/store"
)

// Key is the storage key, shared with the browser version's localStorage.
const Key = "plantStreak"

type Counter struct {
	mu    sync.Mutex
	kv    store.KV
	value int
}

func New(kv store.KV) *Counter {
	return &Counter{kv: kv}
}

// Load reads the persisted value. Missing, unparsable or negative values
// read as 0; only a store failure is an error.
func (c *Counter) Load() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok, err := c.kv.Get(Key)
	if err != nil {
		c.value = 0
		return 0, fmt.Errorf("load streak: %w", err)
	}
	c.value = 0
	if ok {
		if n, perr := strconv.Atoi(strings.TrimSpace(raw)); perr == nil && n > 0 {
			c.value = n
		}
	}
	return c.value, nil
}

func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment bumps the streak and persists it. The in-memory value moves
// even if the write fails.
func (c *Counter) Increment() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value, c.persist()
}

func (c *Counter) Reset() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = 0
	return 0, c.persist()
}

func (c *Counter) persist() error {
	if err := c.kv.Set(Key, strconv.Itoa(c.value)); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}
