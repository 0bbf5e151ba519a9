package game

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Makepad-fr/plantetyven/internal/model"
	"github.com/Makepad-fr/plantetyven/internal/streak"
)

// MinDisplayed is the smallest shelf a round can be played on.
const MinDisplayed = 3

// StageState is where the missing-plant round is.
type StageState int

const (
	StageUninitialized StageState = iota
	StageAwaitingChoice
	StageResolved
)

func (s StageState) String() string {
	switch s {
	case StageAwaitingChoice:
		return "awaiting-choice"
	case StageResolved:
		return "resolved"
	default:
		return "uninitialized"
	}
}

// Round is the prompt the player answers.
type Round struct {
	ID          string
	StolenIndex int // index into the displayed ids
	StolenID    model.PlantID
	Decoys      []model.PlantID
	Choices     model.ChoiceSet
}

// Outcome is the resolution of a round.
type Outcome struct {
	Correct  bool
	ChosenID model.PlantID
	StolenID model.PlantID
	Streak   int
	Panel    Panel
	// Repeated is set when Select was called again after resolution.
	Repeated bool
	// PersistErr is a failed streak write; the outcome itself stands.
	PersistErr error
}

// Stage is the "which plant is missing?" state machine:
// Uninitialized -> AwaitingChoice -> Resolved, and Initialize starts over.
type Stage struct {
	mu      sync.Mutex
	log     *zap.Logger
	rng     *rand.Rand
	streak  *streak.Counter
	state   StageState
	round   Round
	outcome Outcome
}

func NewStage(log *zap.Logger, rng *rand.Rand, counter *streak.Counter) *Stage {
	return &Stage{log: log, rng: rng, streak: counter}
}

func (s *Stage) State() StageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Round returns the current prompt; ok is false before Initialize.
func (s *Stage) Round() (Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StageUninitialized {
		return Round{}, false
	}
	return s.round, true
}

// Initialize steals one of displayed and builds the three-way prompt.
// On error nothing changes.
func (s *Stage) Initialize(displayed []model.PlantID, catalog model.Catalog) (Round, error) {
	if len(displayed) < MinDisplayed {
		s.log.Error("missing-plant stage not started",
			zap.Int("displayed", len(displayed)), zap.Error(ErrTooFewDisplayed))
		return Round{}, ErrTooFewDisplayed
	}
	decoys := catalog.Without(displayed)
	if len(decoys) != 2 {
		s.log.Error("missing-plant stage not started",
			zap.Strings("decoys", decoys), zap.Error(ErrDecoyMismatch))
		return Round{}, ErrDecoyMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.rng.Intn(len(displayed))
	choices := model.ChoiceSet{
		{ID: displayed[idx], Correct: true},
		{ID: decoys[0]},
		{ID: decoys[1]},
	}
	s.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	s.round = Round{
		ID:          uuid.NewString(),
		StolenIndex: idx,
		StolenID:    displayed[idx],
		Decoys:      decoys,
		Choices:     choices,
	}
	s.outcome = Outcome{}
	s.state = StageAwaitingChoice
	s.log.Info("plant stolen",
		zap.String("round", s.round.ID),
		zap.String("stolen", s.round.StolenID),
		zap.Strings("choices", choices.IDs()))
	return s.round, nil
}

// Select resolves the round with the plant id the player picked. Only the
// first accepted pick counts; later calls return that outcome unchanged.
func (s *Stage) Select(id model.PlantID) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StageUninitialized:
		return Outcome{}, ErrNotReady
	case StageResolved:
		out := s.outcome
		out.Repeated = true
		return out, nil
	}

	choice, ok := s.round.Choices.Lookup(id)
	if !ok {
		return Outcome{}, ErrUnknownChoice
	}

	var (
		n   int
		err error
	)
	if choice.Correct {
		n, err = s.streak.Increment()
	} else {
		n, err = s.streak.Reset()
	}
	if err != nil {
		s.log.Warn("streak not saved", zap.String("round", s.round.ID), zap.Error(err))
	}

	s.state = StageResolved
	s.outcome = Outcome{
		Correct:    choice.Correct,
		ChosenID:   choice.ID,
		StolenID:   s.round.StolenID,
		Streak:     n,
		Panel:      panelFor(choice.Correct),
		PersistErr: err,
	}
	s.log.Info("round resolved",
		zap.String("round", s.round.ID),
		zap.String("chosen", choice.ID),
		zap.Bool("correct", choice.Correct),
		zap.Int("streak", n))
	return s.outcome, nil
}

// SelectIndex picks by position in the shuffled choice set.
func (s *Stage) SelectIndex(i int) (Outcome, error) {
	s.mu.Lock()
	state, choices := s.state, s.round.Choices
	s.mu.Unlock()
	if state == StageAwaitingChoice && (i < 0 || i >= len(choices)) {
		return Outcome{}, ErrUnknownChoice
	}
	var id model.PlantID
	if i >= 0 && i < len(choices) {
		id = choices[i].ID
	}
	return s.Select(id)
}
