package anim

import "time"

// Lightswitch phase names, in play order.
const (
	PhaseSlideIn   = "slide-in"
	PhaseHold      = "hold"
	PhaseRetreat   = "retreat"
	PhaseFade      = "fade-to-black"
	PhaseBlink     = "blink"
	PhasePostBlink = "post-blink"
	PhaseRevert    = "revert"
)

const (
	SlideDuration     = 3000 * time.Millisecond
	HoldDuration      = 1000 * time.Millisecond
	SwitchRetreat     = 500 * time.Millisecond
	FadeDuration      = 200 * time.Millisecond
	BlinkDuration     = 2000 * time.Millisecond
	PostBlinkDuration = 500 * time.Millisecond

	// SlideDistance is how far the bottom arm travels, in terminal cells.
	// The browser used 26px on desktop and 146px on narrow screens.
	SlideDistance       = 6
	NarrowSlideDistance = 14
	NarrowWidth         = 60
)

// LightswitchHooks are the side effects of each phase; nil hooks are skipped.
type LightswitchHooks struct {
	SlideIn   func()
	Hold      func()
	Retreat   func()
	Fade      func()
	Blink     func()
	PostBlink func()
	Revert    func()
}

// Lightswitch builds the grab-and-blackout sequence that precedes a round.
func Lightswitch(sched Scheduler, h LightswitchHooks) *Sequence {
	return NewSequence(sched,
		Phase{Name: PhaseSlideIn, Duration: SlideDuration, Enter: h.SlideIn},
		Phase{Name: PhaseHold, Duration: HoldDuration, Enter: h.Hold},
		Phase{Name: PhaseRetreat, Duration: SwitchRetreat, Enter: h.Retreat},
		Phase{Name: PhaseFade, Duration: FadeDuration, Enter: h.Fade},
		Phase{Name: PhaseBlink, Duration: BlinkDuration, Enter: h.Blink},
		Phase{Name: PhasePostBlink, Duration: PostBlinkDuration, Enter: h.PostBlink},
		Phase{Name: PhaseRevert, Enter: h.Revert},
	)
}

// SlideFor picks the bottom arm travel for a terminal width.
func SlideFor(width int) int {
	if width > 0 && width < NarrowWidth {
		return NarrowSlideDistance
	}
	return SlideDistance
}
