// Package dodge implements the survival drill: projectiles fall from the
// top of the field and the player must avoid them until time runs out.
package dodge

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

// Projectile is a falling square.
type Projectile struct {
	Rect  core.Rect
	Speed float64 // Pixels per tick, downward
}

// Game implements the dodging drill.
type Game struct {
	cfg         config.DodgeConfig
	field       core.Rect
	rng         *rand.Rand
	player      core.Rect
	projectiles []Projectile
	timeLeft    float64
	lastTime    int64
	lastSpawn   int64
	outcome     core.Outcome
}

// New creates a drill that starts counting down at now.
func New(cfg config.DodgeConfig, field core.Rect, rng *rand.Rand, now int64) *Game {
	size := float64(cfg.PlayerSize)
	return &Game{
		cfg:       cfg,
		field:     field,
		rng:       rng,
		player:    core.NewRect(field.CenterX(), field.Bottom()-size-10, size, size),
		timeLeft:  cfg.DurationS,
		lastTime:  now,
		lastSpawn: core.Never,
	}
}

// Tick advances the drill by one frame.
func (g *Game) Tick(ctx core.TickContext) core.Outcome {
	if g.outcome.Terminal() {
		return g.outcome
	}

	now := ctx.Now
	g.timeLeft -= float64(now-g.lastTime) / 1000
	g.lastTime = now

	speed := float64(g.cfg.PlayerSpeed)
	if ctx.Input.Held(core.ActionLeft) {
		g.player.X -= speed
	}
	if ctx.Input.Held(core.ActionRight) {
		g.player.X += speed
	}
	g.player = g.player.ClampTo(g.field)

	if core.Elapsed(now, g.lastSpawn, g.cfg.SpawnMs) {
		g.spawn()
		g.lastSpawn = now
	}

	alive := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Rect.Y += p.Speed
		if p.Rect.Y > g.field.Bottom() {
			continue
		}
		if p.Rect.Intersects(g.player) {
			g.outcome = core.OutcomeLost
			return g.outcome
		}
		alive = append(alive, p)
	}
	g.projectiles = alive

	if g.timeLeft <= 0 {
		g.outcome = core.OutcomeWon
	}
	return g.outcome
}

// spawn drops a projectile from just above a random column.
func (g *Game) spawn() {
	size := g.cfg.ProjectileSize
	x := g.field.X + float64(g.rng.Intn(int(g.field.W)-size+1))
	speed := g.cfg.MinSpeed + g.rng.Intn(g.cfg.MaxSpeed-g.cfg.MinSpeed+1)

	g.projectiles = append(g.projectiles, Projectile{
		Rect:  core.NewRect(x, g.field.Y-float64(size), float64(size), float64(size)),
		Speed: float64(speed),
	})
}

// Render draws the player, projectiles, and the countdown.
func (g *Game) Render(f *core.Frame) {
	f.AddRect(g.player, core.SpritePlayer)
	for _, p := range g.projectiles {
		f.AddRect(p.Rect, core.SpriteHostileShot)
	}
	f.AddText(10, 10, fmt.Sprintf("Survive: %.1f", math.Max(g.timeLeft, 0)))
}

// Player returns the player rectangle.
func (g *Game) Player() core.Rect {
	return g.player
}

// Projectiles returns the falling projectiles.
func (g *Game) Projectiles() []Projectile {
	return g.projectiles
}
