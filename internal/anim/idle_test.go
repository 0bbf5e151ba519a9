package anim_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/plantetyven/internal/anim"
	"github.com/Makepad-fr/plantetyven/internal/anim/animtest"
)

type phaseLog struct {
	mu  sync.Mutex
	got []anim.IdlePhase
}

func (p *phaseLog) add(ph anim.IdlePhase) {
	p.mu.Lock()
	p.got = append(p.got, ph)
	p.mu.Unlock()
}

func (p *phaseLog) list() []anim.IdlePhase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]anim.IdlePhase(nil), p.got...)
}

func TestIdleCadence(t *testing.T) {
	assert.Equal(t, 2600*time.Millisecond, anim.IdleCadence())
}

func TestIdleLoopRepeats(t *testing.T) {
	clk := animtest.New()
	log := &phaseLog{}
	l := anim.NewIdleLoop(clk, log.add)

	l.Start()
	assert.True(t, l.Running())
	assert.Equal(t, []anim.IdlePhase{anim.IdleReach}, log.list())

	clk.Advance(anim.ReachDuration)
	assert.Equal(t, []anim.IdlePhase{anim.IdleReach, anim.IdleWiggle}, log.list())

	clk.Advance(anim.IdleCadence() - anim.ReachDuration)
	assert.Equal(t, 2, l.Cycles())
	assert.Equal(t, []anim.IdlePhase{
		anim.IdleReach, anim.IdleWiggle, anim.IdleWiggleEnd, anim.IdleRetreat, anim.IdleRest,
		anim.IdleReach,
	}, log.list())

	clk.Advance(3 * anim.IdleCadence())
	assert.Equal(t, 5, l.Cycles())
	assert.Equal(t, 1, clk.Pending(), "one step pending at a time")
	l.Stop()
}

func TestIdleLoopStopCancelsPending(t *testing.T) {
	clk := animtest.New()
	log := &phaseLog{}
	l := anim.NewIdleLoop(clk, log.add)

	l.Start()
	clk.Advance(anim.ReachDuration + anim.WiggleDuration)
	before := len(log.list())

	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(10 * anim.IdleCadence())
	assert.Len(t, log.list(), before)
	assert.Equal(t, 1, l.Cycles())
}

func TestIdleLoopStartTwiceIsNoop(t *testing.T) {
	clk := animtest.New()
	log := &phaseLog{}
	l := anim.NewIdleLoop(clk, log.add)
	l.Start()
	l.Start()
	assert.Equal(t, 1, clk.Pending())
	assert.Len(t, log.list(), 1)
	l.Stop()
	l.Stop()
}

func TestIdleLoopRestart(t *testing.T) {
	clk := animtest.New()
	log := &phaseLog{}
	l := anim.NewIdleLoop(clk, log.add)

	l.Start()
	l.Stop()
	l.Start()
	assert.Equal(t, 2, l.Cycles())
	assert.Equal(t, 1, clk.Pending())

	clk.Advance(anim.IdleCadence())
	assert.Equal(t, 3, l.Cycles())
	l.Stop()
}

func TestIdleLoopRealClockStops(t *testing.T) {
	var mu sync.Mutex
	n := 0
	l := anim.NewIdleLoop(anim.Scale{Scheduler: anim.RealClock{}, Speed: 100}, func(anim.IdlePhase) {
		mu.Lock()
		n++
		mu.Unlock()
	})
	l.Start()
	time.Sleep(60 * time.Millisecond)
	l.Stop()
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	after := n
	mu.Unlock()
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, n, "no phases after Stop")
	assert.Greater(t, n, 1)
}

// stopOnSchedule stops the loop from another goroutine as soon as the first
// step is scheduled, so Stop races the phase callback of that step.
type stopOnSchedule struct {
	anim.Scheduler
	loop    *anim.IdleLoop
	once    sync.Once
	stopped chan struct{}
}

func (s *stopOnSchedule) AfterFunc(d time.Duration, f func()) anim.Timer {
	s.once.Do(func() {
		go func() {
			s.loop.Stop()
			close(s.stopped)
		}()
	})
	return s.Scheduler.AfterFunc(d, f)
}

func TestIdleLoopStopWaitsForRunningPhase(t *testing.T) {
	clk := animtest.New()
	sched := &stopOnSchedule{Scheduler: clk, stopped: make(chan struct{})}
	log := &phaseLog{}
	var stoppedDuringPhase bool
	l := anim.NewIdleLoop(sched, func(p anim.IdlePhase) {
		// give the concurrent Stop time to reach the loop
		select {
		case <-sched.stopped:
			stoppedDuringPhase = true
		case <-time.After(50 * time.Millisecond):
		}
		log.add(p)
	})
	sched.loop = l

	l.Start()
	<-sched.stopped

	assert.False(t, stoppedDuringPhase, "Stop returned while onPhase was running")
	assert.False(t, l.Running())
	assert.Equal(t, []anim.IdlePhase{anim.IdleReach}, log.list())

	clk.Advance(2 * anim.IdleCadence())
	assert.Equal(t, []anim.IdlePhase{anim.IdleReach}, log.list(), "no phase after Stop")
}

func TestIdleLoopStopAfterStopIsSafe(t *testing.T) {
	clk := animtest.New()
	l := anim.NewIdleLoop(clk, nil)
	l.Start()
	l.Stop()
	l.Stop()
	assert.False(t, l.Running())
	assert.Equal(t, 0, clk.Pending())
}
