package anim

import (
	"sync"
	"time"
)

// IdlePhase marks a boundary inside one peek cycle of the top arm.
type IdlePhase int

const (
	IdleReach     IdlePhase = iota // arm pops out
	IdleWiggle                     // middle top plant starts wiggling
	IdleWiggleEnd                  // wiggle stops
	IdleRetreat                    // arm pulls back
	IdleRest                       // arm hidden until the next cycle
)

func (p IdlePhase) String() string {
	switch p {
	case IdleReach:
		return "reach"
	case IdleWiggle:
		return "wiggle"
	case IdleWiggleEnd:
		return "wiggle-end"
	case IdleRetreat:
		return "retreat"
	case IdleRest:
		return "rest"
	}
	return "unknown"
}

const (
	ReachDuration    = 400 * time.Millisecond
	WiggleDuration   = 700 * time.Millisecond
	PauseAfterWiggle = 200 * time.Millisecond
	RetreatDuration  = 500 * time.Millisecond
	LoopPause        = 800 * time.Millisecond

	// ArmExtend is how far the top arm reaches in, in terminal cells.
	ArmExtend = 11
)

type idleStep struct {
	phase IdlePhase
	hold  time.Duration
}

var idleCycle = []idleStep{
	{IdleReach, ReachDuration},
	{IdleWiggle, WiggleDuration},
	{IdleWiggleEnd, PauseAfterWiggle},
	{IdleRetreat, RetreatDuration},
	{IdleRest, LoopPause},
}

// IdleCadence is the length of one full cycle.
func IdleCadence() time.Duration {
	var d time.Duration
	for _, s := range idleCycle {
		d += s.hold
	}
	return d
}

// IdleLoop repeats the peek cycle until stopped. Each step is scheduled by
// the previous one, so cycles never overlap.
type IdleLoop struct {
	sched   Scheduler
	onPhase func(IdlePhase)

	// dispatch is held while a step checks its generation and runs onPhase.
	dispatch sync.Mutex

	mu      sync.Mutex
	running bool
	gen     uint64
	timer   Timer
	cycles  int
}

// NewIdleLoop calls onPhase at every step boundary, outside the loop's state
// lock. onPhase must not call Stop.
func NewIdleLoop(sched Scheduler, onPhase func(IdlePhase)) *IdleLoop {
	if onPhase == nil {
		onPhase = func(IdlePhase) {}
	}
	return &IdleLoop{sched: sched, onPhase: onPhase}
}

func (l *IdleLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Cycles counts cycles started since the loop was created.
func (l *IdleLoop) Cycles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cycles
}

// Start begins a cycle right away. No-op while running.
func (l *IdleLoop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.gen++
	gen := l.gen
	l.mu.Unlock()
	l.step(gen, 0)
}

// Stop cancels the pending step and waits for a callback already in
// flight. Once Stop returns no further phase is reported; steps already
// handed to the scheduler belong to an old generation and do nothing.
func (l *IdleLoop) Stop() {
	l.mu.Lock()
	if l.running {
		l.running = false
		l.gen++
		if l.timer != nil {
			l.timer.Stop()
			l.timer = nil
		}
	}
	l.mu.Unlock()

	// wait out an onPhase that is already running
	l.dispatch.Lock()
	l.dispatch.Unlock()
}

func (l *IdleLoop) step(gen uint64, i int) {
	l.dispatch.Lock()
	defer l.dispatch.Unlock()

	l.mu.Lock()
	if !l.running || gen != l.gen {
		l.mu.Unlock()
		return
	}
	s := idleCycle[i]
	if i == 0 {
		l.cycles++
	}
	next := (i + 1) % len(idleCycle)
	l.timer = l.sched.AfterFunc(s.hold, func() { l.step(gen, next) })
	l.mu.Unlock()

	l.onPhase(s.phase)
}
