package anim

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSequenceUsed = errors.New("sequence already started")

// Phase is one step of a sequence: Enter runs at the start, then the
// sequencer holds for Duration before the next phase.
type Phase struct {
	Name     string
	Duration time.Duration
	Enter    func()
}

// Sequence plays its phases strictly in order, once.
type Sequence struct {
	sched  Scheduler
	phases []Phase

	mu   sync.Mutex
	used bool
	done chan struct{}
}

func NewSequence(sched Scheduler, phases ...Phase) *Sequence {
	return &Sequence{sched: sched, phases: phases, done: make(chan struct{})}
}

// Total is the sum of all phase durations at speed 1.
func (s *Sequence) Total() time.Duration {
	var d time.Duration
	for _, p := range s.phases {
		d += p.Duration
	}
	return d
}

func (s *Sequence) Phases() []Phase {
	out := make([]Phase, len(s.phases))
	copy(out, s.phases)
	return out
}

// Done is closed once the final phase has elapsed.
func (s *Sequence) Done() <-chan struct{} { return s.done }

// Run blocks until every phase has run. A second call returns
// ErrSequenceUsed; a canceled ctx stops before the next phase.
func (s *Sequence) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.used {
		s.mu.Unlock()
		return ErrSequenceUsed
	}
	s.used = true
	s.mu.Unlock()

	for _, p := range s.phases {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.Enter != nil {
			p.Enter()
		}
		if p.Duration <= 0 {
			continue
		}
		if !sleep(s.sched, p.Duration, ctx.Done()) {
			return ctx.Err()
		}
	}
	close(s.done)
	return nil
}
