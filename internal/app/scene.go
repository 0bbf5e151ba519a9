package app

import (
	"github.com/Makepad-fr/plantetyven/internal/game"
	"github.com/Makepad-fr/plantetyven/internal/model"
)

// Mode is the controller's place in the game flow.
type Mode int

const (
	ModeIntro      Mode = iota // idle loop, start available
	ModeTransition             // lightswitch sequence playing
	ModeChoosing               // waiting for the player's pick
	ModeResult                 // end panel
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeTransition:
		return "transition"
	case ModeChoosing:
		return "choosing"
	case ModeResult:
		return "result"
	}
	return "unknown"
}

// On-screen copy.
const (
	CaptionIntro    = "Hvem stjeler plantene?"
	CaptionMemorize = "Husk disse seks plantene!"
	CaptionOhNo     = "Å nei!"
	CaptionChoose   = "Hvilken mangler?"
)

// Slot is one plant position on a shelf.
type Slot struct {
	ID     model.PlantID
	Hidden bool
	Wiggle bool
}

// Scene is everything the view needs to draw a frame. It holds no
// rendering state of its own.
type Scene struct {
	Mode   Mode
	Top    []Slot
	Bottom []Slot

	TopArm        int // cells the top arm sticks out, 0 = hidden
	BottomArm     int
	SwitchVisible bool
	StartVisible  bool
	ShelvesHidden bool
	Dark          bool
	Eyes          bool
	EyesClosed    bool

	Caption    string
	Phase      string
	PhaseIndex int
	PhaseCount int

	Streak  int
	Choices []model.PlantID
	Outcome *game.Outcome
	Err     string
}

func (s Scene) clone() Scene {
	c := s
	c.Top = append([]Slot(nil), s.Top...)
	c.Bottom = append([]Slot(nil), s.Bottom...)
	c.Choices = append([]model.PlantID(nil), s.Choices...)
	if s.Outcome != nil {
		o := *s.Outcome
		c.Outcome = &o
	}
	return c
}

// Displayed returns the shelf ids, top first.
func (s Scene) Displayed() []model.PlantID {
	out := make([]model.PlantID, 0, len(s.Top)+len(s.Bottom))
	for _, sl := range s.Top {
		out = append(out, sl.ID)
	}
	for _, sl := range s.Bottom {
		out = append(out, sl.ID)
	}
	return out
}

func slots(ids []model.PlantID) []Slot {
	out := make([]Slot, len(ids))
	for i, id := range ids {
		out[i] = Slot{ID: id}
	}
	return out
}
