// Package quest implements the full session: a title screen, the intro
// story, a hub where the player picks training drills to gather magic,
// and the final boss encounter.
package quest

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
	"github.com/vovakirdan/magequest/internal/games/story"
	"github.com/vovakirdan/magequest/internal/registry"
)

// Game implements the quest state machine.
type Game struct {
	cfg    config.QuestConfig
	logger *log.Logger
	rng    *rand.Rand
	field  core.Rect
	player PlayerState
	avatar core.Rect // Hub position of the player
	stage  stage
	exit   bool
}

// New creates a quest in its Start phase.
func New(cfg config.QuestConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{cfg: cfg, logger: logger}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "quest"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mage Quest"
}

// Reset starts a new session with a fresh player.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.exit = false
	g.restart()
}

// restart returns to the title screen with a fresh player. The RNG is
// not reseeded.
func (g *Game) restart() {
	g.field = core.Field(g.cfg.Field.Width, g.cfg.Field.Height)
	g.player = NewPlayerState(g.cfg.Player)
	size := float64(g.cfg.Player.Size)
	g.avatar = core.NewRect(g.field.CenterX()-size/2, g.field.Y+g.field.H/2-size/2, size, size)
	g.stage = startStage{}
}

// Reconfigure swaps in new tunables for modules created from now on.
// A running drill or boss fight keeps its field until it ends.
func (g *Game) Reconfigure(cfg config.QuestConfig) {
	g.cfg = cfg
	if !g.inModule() {
		g.applyField()
	}
}

func (g *Game) applyField() {
	g.field = core.Field(g.cfg.Field.Width, g.cfg.Field.Height)
	g.avatar = g.avatar.ClampTo(g.field)
}

// inModule reports whether a drill or the boss encounter is running.
func (g *Game) inModule() bool {
	switch g.stage.(type) {
	case *drillStage, *bossStage:
		return true
	}
	return false
}

// Step advances the session by one tick. The lives check runs after the
// active phase and wins over any transition it made.
func (g *Game) Step(ctx core.TickContext) core.StepResult {
	if ctx.Input.Quit {
		g.exit = true
		return core.StepResult{State: g.State()}
	}

	switch st := g.stage.(type) {
	case startStage:
		if ctx.Input.Pressed(core.ActionConfirm) {
			g.enter(&narrativeStage{story: story.New(g.cfg.Narrative, ctx.Now)}, g.player)
		}
	case *narrativeStage:
		if st.story.Tick(ctx.Now) {
			g.enter(hubStage{}, g.player)
		}
	case hubStage:
		g.stepHub(ctx)
	case *drillStage:
		g.stepDrill(st, ctx)
	case *bossStage:
		g.stepBoss(st, ctx)
	case gameOverStage:
		if ctx.Input.Pressed(core.ActionConfirm) {
			before := g.player
			g.restart()
			g.logTransition(PhaseGameOver, PhaseStart, before)
		}
	default:
		panic(fmt.Sprintf("quest: unknown stage %T", st))
	}

	if g.player.Defeated() && g.Phase() != PhaseGameOver {
		g.enter(gameOverStage{}, g.player)
	}
	return core.StepResult{State: g.State()}
}

// stepHub moves the avatar and handles menu selection.
func (g *Game) stepHub(ctx core.TickContext) {
	in := ctx.Input
	speed := float64(g.cfg.Player.HubSpeed)
	if in.Held(core.ActionLeft) {
		g.avatar.X -= speed
	}
	if in.Held(core.ActionRight) {
		g.avatar.X += speed
	}
	if in.Held(core.ActionUp) {
		g.avatar.Y -= speed
	}
	if in.Held(core.ActionDown) {
		g.avatar.Y += speed
	}
	g.avatar = g.avatar.ClampTo(g.field)

	switch {
	case in.Pressed(core.ActionSelect1):
		g.startDrill(PhaseShoot, shoot.New(g.cfg.Shoot, g.field, g.rng, ctx.Now), g.cfg.Shoot.Reward)
	case in.Pressed(core.ActionSelect2):
		g.startDrill(PhaseDodge, dodge.New(g.cfg.Dodge, g.field, g.rng, ctx.Now), g.cfg.Dodge.Reward)
	case in.Pressed(core.ActionSelect3):
		g.startDrill(PhaseCatch, catch.New(g.cfg.Catch, g.field, g.rng, ctx.Now), g.cfg.Catch.Reward)
	case in.Pressed(core.ActionSelect4):
		if !g.player.CanFaceBoss(g.cfg.Player.BossMagic) {
			g.logger.Debug("boss entry refused", "magic", g.player.Magic, "required", g.cfg.Player.BossMagic)
			return
		}
		g.enter(&bossStage{encounter: boss.New(g.cfg.Boss, g.field, ctx.Now)}, g.player)
	}
}

func (g *Game) startDrill(kind Phase, m core.Module, reward config.Reward) {
	g.enter(&drillStage{kind: kind, module: m, reward: reward}, g.player)
}

// stepDrill ticks the running drill and applies its result on return to
// the hub. Losing the last life goes straight to GameOver.
func (g *Game) stepDrill(st *drillStage, ctx core.TickContext) {
	out := st.module.Tick(ctx)
	if !out.Terminal() {
		return
	}

	before := g.player
	if out == core.OutcomeWon {
		g.player.Reward(st.reward, g.cfg.Player.MaxMagic)
	} else {
		g.player.LoseLife()
	}

	var next stage = hubStage{}
	if g.player.Defeated() {
		next = gameOverStage{}
	}
	g.enter(next, before)
}

// stepBoss ticks the encounter. Both results end the session.
func (g *Game) stepBoss(st *bossStage, ctx core.TickContext) {
	out := st.encounter.Tick(ctx)
	if !out.Terminal() {
		return
	}

	before := g.player
	if out == boss.Victory {
		g.player.Victorious = true
	} else {
		g.player.LoseLife()
	}
	g.enter(gameOverStage{}, before)
}

// enter switches to next. before is the player state prior to the
// deltas this transition applied.
func (g *Game) enter(next stage, before PlayerState) {
	from := g.Phase()
	g.stage = next
	if !g.inModule() {
		g.applyField()
	}
	g.logTransition(from, next.phase(), before)
}

func (g *Game) logTransition(from, to Phase, before PlayerState) {
	g.logger.Info("phase change",
		"from", from.String(),
		"to", to.String(),
		"score", g.player.Score-before.Score,
		"lives", g.player.Lives-before.Lives,
		"magic", g.player.Magic-before.Magic,
	)
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.stage.phase()
}

// Player returns the current player state.
func (g *Game) Player() PlayerState {
	return g.player
}

// Avatar returns the player's hub rectangle.
func (g *Game) Avatar() core.Rect {
	return g.avatar
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		GameOver: g.Phase() == PhaseGameOver,
		Exit:     g.exit,
	}
}

func init() {
	registry.Register("quest", func(d registry.Deps) registry.Game {
		return New(d.Config, d.Logger)
	})
}
