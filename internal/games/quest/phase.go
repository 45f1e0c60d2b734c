package quest

import (
	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/games/boss"
	"github.com/vovakirdan/magequest/internal/games/story"
)

// Phase is the active top-level state of a session.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseNarrative
	PhaseHub
	PhaseShoot
	PhaseDodge
	PhaseCatch
	PhaseBoss
	PhaseGameOver
)

// String returns the phase tag used in frames and logs.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseNarrative:
		return "narrative"
	case PhaseHub:
		return "hub"
	case PhaseShoot:
		return "shoot"
	case PhaseDodge:
		return "dodge"
	case PhaseCatch:
		return "catch"
	case PhaseBoss:
		return "boss"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// stage is the active phase together with the state only that phase owns.
// Exactly one stage exists at a time, so a drill or the boss can only be
// reached while its phase is active.
type stage interface {
	phase() Phase
}

type startStage struct{}

type narrativeStage struct {
	story *story.Story
}

type hubStage struct{}

// drillStage runs one of the three timed drills.
type drillStage struct {
	kind   Phase
	module core.Module
	reward config.Reward
}

type bossStage struct {
	encounter *boss.Game
}

type gameOverStage struct{}

func (startStage) phase() Phase      { return PhaseStart }
func (*narrativeStage) phase() Phase { return PhaseNarrative }
func (hubStage) phase() Phase        { return PhaseHub }
func (s *drillStage) phase() Phase   { return s.kind }
func (*bossStage) phase() Phase      { return PhaseBoss }
func (gameOverStage) phase() Phase   { return PhaseGameOver }
