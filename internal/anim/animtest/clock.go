// Package animtest provides a manual clock for driving anim schedulers in tests.
package animtest

import (
	"sync"
	"time"

	"github.com/Makepad-fr/plantetyven/internal/anim"
)

// Clock only moves when Advance is called. Callbacks run synchronously on
// the goroutine calling Advance, in deadline order.
type Clock struct {
	mu     sync.Mutex
	cond   *sync.Cond
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	c    *Clock
	at   time.Duration
	seq  int
	f    func()
	done bool
}

func New() *Clock {
	c := &Clock{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

var _ anim.Scheduler = (*Clock)(nil)

func (c *Clock) AfterFunc(d time.Duration, f func()) anim.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &timer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	c.cond.Broadcast()
	return t
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.c.remove(t)
	return true
}

func (c *Clock) remove(t *timer) {
	for i, x := range c.timers {
		if x == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Now is the elapsed manual time.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending counts scheduled calls that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// BlockUntil waits until at least n calls are pending.
func (c *Clock) BlockUntil(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.timers) < n {
		c.cond.Wait()
	}
}

// Advance moves time forward by d, firing every call that comes due,
// including ones scheduled by callbacks fired along the way.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()
	for {
		c.mu.Lock()
		var next *timer
		for _, t := range c.timers {
			if t.at > target {
				continue
			}
			if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.remove(next)
		next.done = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}
