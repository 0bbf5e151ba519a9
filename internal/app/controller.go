// Package app sequences the game: idle loop, lightswitch transition and the
// missing-plant stage. It owns the Scene; views only read snapshots of it.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/Makepad-fr/plantetyven/internal/anim"
	"github.com/Makepad-fr/plantetyven/internal/game"
	"github.com/Makepad-fr/plantetyven/internal/model"
	"github.com/Makepad-fr/plantetyven/internal/streak"
)

var ErrBusy = errors.New("controller busy")

// EventKind says what part of the scene moved.
type EventKind int

const (
	EventShelf EventKind = iota
	EventIdle
	EventTransition
	EventStage
	EventResolved
	EventError
)

type Event struct {
	Kind  EventKind
	Phase string
}

type Options struct {
	Catalog   model.Catalog
	Rand      *rand.Rand
	Scheduler anim.Scheduler
	Streak    *streak.Counter
	Log       *zap.Logger
}

type Controller struct {
	log     *zap.Logger
	catalog model.Catalog
	rng     *rand.Rand
	sched   anim.Scheduler
	streak  *streak.Counter
	stage   *game.Stage
	idle    *anim.IdleLoop
	events  chan Event

	evMu      sync.Mutex
	closed    bool
	closeOnce sync.Once

	mu    sync.Mutex
	scene Scene
	slide int
}

func New(opt Options) *Controller {
	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		log:     log,
		catalog: opt.Catalog,
		rng:     opt.Rand,
		sched:   opt.Scheduler,
		streak:  opt.Streak,
		events:  make(chan Event, 64),
		slide:   anim.SlideDistance,
	}
	c.stage = game.NewStage(log.Named("stage"), c.rng, c.streak)
	c.idle = anim.NewIdleLoop(c.sched, c.onIdle)
	return c
}

// Events delivers change notifications. A full buffer drops the newest
// event; the reader always re-reads Snapshot, so nothing is lost. The
// channel is closed by Close.
func (c *Controller) Events() <-chan Event { return c.events }

func (c *Controller) Snapshot() Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene.clone()
}

// Idle exposes the loop for inspection.
func (c *Controller) Idle() *anim.IdleLoop { return c.idle }

// Stage exposes the missing-plant stage for inspection.
func (c *Controller) Stage() *game.Stage { return c.stage }

// SetWidth adapts the bottom arm travel to the surface width.
func (c *Controller) SetWidth(w int) {
	c.mu.Lock()
	c.slide = anim.SlideFor(w)
	c.mu.Unlock()
}

func (c *Controller) publish(e Event) {
	c.evMu.Lock()
	defer c.evMu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- e:
	default:
	}
}

// Load restores the streak, fills the shelves and starts the idle loop.
func (c *Controller) Load() error {
	n, err := c.streak.Load()
	if err != nil {
		c.log.Warn("streak unavailable, starting from 0", zap.Error(err))
	}
	c.mu.Lock()
	c.scene = Scene{Streak: n}
	err = c.reshelveLocked()
	c.enterIntroLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.publish(Event{Kind: EventShelf})
	c.startIdle()
	return nil
}

func (c *Controller) reshelveLocked() error {
	ds, err := game.Shelve(c.catalog, c.rng)
	if err != nil {
		c.scene.Err = err.Error()
		return fmt.Errorf("shelve: %w", err)
	}
	c.scene.Top = slots(ds.Top)
	c.scene.Bottom = slots(ds.Bottom)
	return nil
}

func (c *Controller) enterIntroLocked() {
	c.scene.Mode = ModeIntro
	c.scene.Caption = CaptionIntro
	c.scene.StartVisible = true
	c.scene.SwitchVisible = false
	c.scene.ShelvesHidden = false
	c.scene.Dark, c.scene.Eyes, c.scene.EyesClosed = false, false, false
	c.scene.TopArm, c.scene.BottomArm = 0, 0
	c.scene.Phase, c.scene.PhaseIndex, c.scene.PhaseCount = "", 0, 0
	c.scene.Choices = nil
	c.scene.Outcome = nil
}

func (c *Controller) onIdle(p anim.IdlePhase) {
	c.mu.Lock()
	if c.scene.Mode != ModeIntro {
		c.mu.Unlock()
		return
	}
	switch p {
	case anim.IdleReach:
		c.scene.TopArm = anim.ArmExtend
	case anim.IdleWiggle, anim.IdleWiggleEnd:
		// the middle top plant, when there is one
		if len(c.scene.Top) > 1 {
			c.scene.Top[1].Wiggle = p == anim.IdleWiggle
		}
	case anim.IdleRetreat:
		c.scene.TopArm = 0
	}
	c.mu.Unlock()
	c.publish(Event{Kind: EventIdle, Phase: p.String()})
}

// Trigger plays a round's opening: it stops the idle loop, reshuffles, runs
// the lightswitch sequence and then starts the missing-plant stage on the
// freshly shown plants. Only valid from the intro.
func (c *Controller) Trigger(ctx context.Context) error {
	c.mu.Lock()
	if c.scene.Mode != ModeIntro {
		c.mu.Unlock()
		return ErrBusy
	}
	c.scene.Mode = ModeTransition
	c.mu.Unlock()

	c.idle.Stop()

	c.mu.Lock()
	if err := c.reshelveLocked(); err != nil {
		c.enterIntroLocked()
		c.mu.Unlock()
		c.publish(Event{Kind: EventError})
		return err
	}
	c.scene.TopArm = 0
	for i := range c.scene.Top {
		c.scene.Top[i].Wiggle = false
	}
	c.scene.Err = ""
	slide := c.slide
	c.mu.Unlock()
	c.publish(Event{Kind: EventShelf})

	seq := anim.Lightswitch(c.sched, c.lightswitchHooks(slide))
	phases := seq.Phases()
	c.mu.Lock()
	c.scene.PhaseCount = len(phases)
	c.mu.Unlock()

	c.log.Debug("lightswitch sequence started", zap.Duration("total", seq.Total()))
	if err := seq.Run(ctx); err != nil {
		c.log.Info("lightswitch sequence interrupted", zap.Error(err))
		// the caller is going away; leave the loop stopped
		c.mu.Lock()
		c.enterIntroLocked()
		c.mu.Unlock()
		c.publish(Event{Kind: EventShelf})
		return err
	}

	c.mu.Lock()
	displayed := c.scene.Displayed()
	c.mu.Unlock()

	round, err := c.stage.Initialize(displayed, c.catalog)
	if err != nil {
		c.mu.Lock()
		c.enterIntroLocked()
		c.scene.Err = err.Error()
		c.mu.Unlock()
		c.publish(Event{Kind: EventError})
		c.startIdle()
		return err
	}

	c.mu.Lock()
	c.hideLocked(round.StolenIndex)
	c.scene.Mode = ModeChoosing
	c.scene.Caption = CaptionChoose
	c.scene.Choices = round.Choices.IDs()
	c.mu.Unlock()
	c.publish(Event{Kind: EventStage})
	return nil
}

func (c *Controller) hideLocked(i int) {
	if i < len(c.scene.Top) {
		c.scene.Top[i].Hidden = true
		return
	}
	i -= len(c.scene.Top)
	if i < len(c.scene.Bottom) {
		c.scene.Bottom[i].Hidden = true
	}
}

func (c *Controller) lightswitchHooks(slide int) anim.LightswitchHooks {
	step := func(name string, f func(s *Scene)) func() {
		return func() {
			c.mu.Lock()
			c.scene.Phase = name
			c.scene.PhaseIndex++
			f(&c.scene)
			c.mu.Unlock()
			c.publish(Event{Kind: EventTransition, Phase: name})
		}
	}
	return anim.LightswitchHooks{
		SlideIn: step(anim.PhaseSlideIn, func(s *Scene) {
			s.StartVisible = false
			s.SwitchVisible = true
			s.Caption = CaptionMemorize
			s.BottomArm = slide
		}),
		Hold: step(anim.PhaseHold, func(*Scene) {}),
		Retreat: step(anim.PhaseRetreat, func(s *Scene) {
			s.BottomArm = 0
		}),
		Fade: step(anim.PhaseFade, func(s *Scene) {
			s.Dark = true
			s.Caption = CaptionOhNo
			s.ShelvesHidden = true
			s.Eyes = true
		}),
		Blink: step(anim.PhaseBlink, func(s *Scene) {
			s.EyesClosed = true
		}),
		PostBlink: step(anim.PhasePostBlink, func(s *Scene) {
			s.EyesClosed = false
		}),
		Revert: step(anim.PhaseRevert, func(s *Scene) {
			s.Dark = false
			s.Eyes = false
			s.ShelvesHidden = false
		}),
	}
}

// Select answers the prompt with the choice at index i. After the first
// accepted answer further calls return the same outcome.
func (c *Controller) Select(i int) (game.Outcome, error) {
	c.mu.Lock()
	mode := c.scene.Mode
	c.mu.Unlock()
	if mode != ModeChoosing && mode != ModeResult {
		return game.Outcome{}, ErrBusy
	}
	out, err := c.stage.SelectIndex(i)
	if err != nil {
		return out, err
	}
	if out.Repeated {
		return out, nil
	}
	c.mu.Lock()
	c.scene.Mode = ModeResult
	c.scene.Streak = out.Streak
	c.scene.ShelvesHidden = true
	c.scene.StartVisible = false
	c.scene.SwitchVisible = false
	c.scene.Caption = out.Panel.Headline
	o := out
	c.scene.Outcome = &o
	if out.PersistErr != nil {
		c.scene.Err = out.PersistErr.Error()
	}
	c.mu.Unlock()
	c.publish(Event{Kind: EventResolved})
	return out, nil
}

// SelectID answers the prompt by plant id.
func (c *Controller) SelectID(id model.PlantID) (game.Outcome, error) {
	c.mu.Lock()
	idx := -1
	for i, x := range c.scene.Choices {
		if x == id {
			idx = i
		}
	}
	c.mu.Unlock()
	return c.Select(idx)
}

// Restart leaves the end panel for a fresh intro.
func (c *Controller) Restart() error {
	c.mu.Lock()
	if c.scene.Mode != ModeResult {
		c.mu.Unlock()
		return ErrBusy
	}
	c.scene.Err = ""
	err := c.reshelveLocked()
	c.enterIntroLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.publish(Event{Kind: EventShelf})
	c.startIdle()
	return nil
}

func (c *Controller) isClosed() bool {
	c.evMu.Lock()
	defer c.evMu.Unlock()
	return c.closed
}

func (c *Controller) startIdle() {
	if !c.isClosed() {
		c.idle.Start()
	}
}

// Close stops the idle loop and closes the event channel. Safe to call
// more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.evMu.Lock()
		c.closed = true
		close(c.events)
		c.evMu.Unlock()
	})
	c.idle.Stop()
}
