// Package practice runs a single drill or the boss encounter on its own,
// outside the quest. Results never touch quest progress; a finished run
// restarts on confirm.
package practice

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/games/boss"
	"github.com/vovakirdan/magequest/internal/games/catch"
	"github.com/vovakirdan/magequest/internal/games/dodge"
	"github.com/vovakirdan/magequest/internal/games/shoot"
	"github.com/vovakirdan/magequest/internal/registry"
)

// Builder creates a fresh module starting at now.
type Builder func(cfg config.QuestConfig, field core.Rect, rng *rand.Rand, now int64) core.Module

// Game repeats one module until the player quits.
type Game struct {
	id      string
	title   string
	build   Builder
	cfg     config.QuestConfig
	logger  *log.Logger
	rng     *rand.Rand
	module  core.Module
	outcome core.Outcome
	runs    int
	wins    int
	exit    bool
}

// New creates a practice game. The first run starts on the first Step.
func New(id, title string, build Builder, cfg config.QuestConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{id: id, title: title, build: build, cfg: cfg, logger: logger}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset clears the run history and reseeds.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.module = nil
	g.outcome = core.OutcomeContinue
	g.runs = 0
	g.wins = 0
	g.exit = false
}

// Reconfigure swaps in new tunables for the next run.
func (g *Game) Reconfigure(cfg config.QuestConfig) {
	g.cfg = cfg
}

func (g *Game) field() core.Rect {
	return core.Field(g.cfg.Field.Width, g.cfg.Field.Height)
}

// Step advances the current run, or starts a new one on confirm once the
// previous run has finished.
func (g *Game) Step(ctx core.TickContext) core.StepResult {
	if ctx.Input.Quit {
		g.exit = true
		return core.StepResult{State: g.State()}
	}

	switch {
	case g.module == nil:
		g.start(ctx.Now)
	case g.outcome.Terminal():
		if ctx.Input.Pressed(core.ActionConfirm) {
			g.start(ctx.Now)
		}
	default:
		g.outcome = g.module.Tick(ctx)
		if g.outcome.Terminal() {
			g.runs++
			if g.outcome == core.OutcomeWon {
				g.wins++
			}
			g.logger.Info("practice run finished", "game", g.id, "outcome", g.outcome.String(), "wins", g.wins, "runs", g.runs)
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) start(now int64) {
	g.module = g.build(g.cfg, g.field(), g.rng, now)
	g.outcome = core.OutcomeContinue
	g.logger.Debug("practice run started", "game", g.id)
}

// Frame returns the draw request for the current run.
func (g *Game) Frame() *core.Frame {
	field := g.field()
	f := core.NewFrame(g.id, field)
	if g.module != nil {
		g.module.Render(f)
	}

	f.AddText(10, field.Bottom()-30, fmt.Sprintf("Practice: %s  Cleared %d/%d", g.title, g.wins, g.runs))
	if g.outcome.Terminal() {
		title := "FAILED"
		if g.outcome == core.OutcomeWon {
			title = "CLEARED"
		}
		f.AddCentered(250, title, core.StyleTitle)
		f.AddCentered(320, "Press SPACE to try again", core.StyleBody)
	}
	return f
}

// Outcome returns the result of the current run.
func (g *Game) Outcome() core.Outcome {
	return g.outcome
}

// State returns the current game state. Score counts cleared runs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wins,
		GameOver: g.outcome.Terminal(),
		Exit:     g.exit,
	}
}

// Builders for each module that can be practiced.
var (
	ShootBuilder Builder = func(cfg config.QuestConfig, field core.Rect, rng *rand.Rand, now int64) core.Module {
		return shoot.New(cfg.Shoot, field, rng, now)
	}
	DodgeBuilder Builder = func(cfg config.QuestConfig, field core.Rect, rng *rand.Rand, now int64) core.Module {
		return dodge.New(cfg.Dodge, field, rng, now)
	}
	CatchBuilder Builder = func(cfg config.QuestConfig, field core.Rect, rng *rand.Rand, now int64) core.Module {
		return catch.New(cfg.Catch, field, rng, now)
	}
	BossBuilder Builder = func(cfg config.QuestConfig, field core.Rect, _ *rand.Rand, now int64) core.Module {
		return boss.New(cfg.Boss, field, now)
	}
)

func register(id, title string, build Builder) {
	registry.Register(id, func(d registry.Deps) registry.Game {
		return New(id, title, build, d.Config, d.Logger)
	})
}

func init() {
	register("shoot", "Shooting training", ShootBuilder)
	register("dodge", "Dodging training", DodgeBuilder)
	register("catch", "Reaction training", CatchBuilder)
	register("boss", "Dark Lord", BossBuilder)
}
