// Package anim drives the timed arm animations: the idle peek loop and the
// one-shot lightswitch sequence. Timing goes through a Scheduler so tests
// can run it on a manual clock.
package anim

import "time"

// Timer is a cancelable scheduled call.
type Timer interface {
	// Stop reports whether the call was prevented from running.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules on the runtime timers.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scale multiplies durations by a speed factor; speed 2 runs twice as fast.
type Scale struct {
	Scheduler
	Speed float64
}

func (s Scale) AfterFunc(d time.Duration, f func()) Timer {
	if s.Speed > 0 && s.Speed != 1 {
		d = time.Duration(float64(d) / s.Speed)
	}
	return s.Scheduler.AfterFunc(d, f)
}

// sleep waits d on sched, or until done is closed.
func sleep(sched Scheduler, d time.Duration, done <-chan struct{}) bool {
	fired := make(chan struct{})
	t := sched.AfterFunc(d, func() { close(fired) })
	select {
	case <-fired:
		return true
	case <-done:
		t.Stop()
		return false
	}
}
