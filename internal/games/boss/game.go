// Package boss implements the final encounter. The player moves along the
// bottom of the field and fires upward; the boss cycles through attack
// patterns from the top. Depleting the boss's health is a victory, taking
// a single hit is a defeat.
package boss

import (
	"fmt"
	"math"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

// Encounter results, as reported by Tick.
const (
	Victory = core.OutcomeWon
	Defeat  = core.OutcomeLost
)

// ProjectileKind distinguishes how a hostile projectile moves.
type ProjectileKind int

const (
	KindStraight ProjectileKind = iota // Falls straight down
	KindAngled                         // Falls while drifting sideways
)

// Projectile is a hostile shot fired by the boss.
type Projectile struct {
	Kind  ProjectileKind
	Rect  core.Rect
	Angle float64 // Radians from vertical, angled projectiles only
}

// Game implements the boss encounter.
type Game struct {
	cfg         config.BossConfig
	field       core.Rect
	boss        core.Rect
	player      core.Rect
	health      int
	shots       []core.Rect // Player projectiles
	projectiles []Projectile
	lastShot    int64
	pattern     int
	patternAt   int64
	lastVolley  int64
	outcome     core.Outcome
}

// New creates an encounter starting at now.
func New(cfg config.BossConfig, field core.Rect, now int64) *Game {
	size := float64(cfg.Size)
	psize := float64(cfg.PlayerSize)
	return &Game{
		cfg:        cfg,
		field:      field,
		boss:       core.NewRect(field.CenterX()-size/2, field.Y+50, size, size),
		player:     core.NewRect(field.CenterX(), field.Bottom()-psize-10, psize, psize),
		health:     cfg.Health,
		lastShot:   core.Never,
		patternAt:  now,
		lastVolley: core.Never,
	}
}

// Tick advances the encounter by one frame. Player shots resolve before
// hostile projectiles, so a killing blow wins even if the player is hit
// in the same tick.
func (g *Game) Tick(ctx core.TickContext) core.Outcome {
	if g.outcome.Terminal() {
		return g.outcome
	}
	now := ctx.Now

	g.movePlayer(ctx.Input)
	if ctx.Input.Held(core.ActionFire) && core.Elapsed(now, g.lastShot, g.cfg.ShotCooldownMs) {
		g.fire()
		g.lastShot = now
	}
	g.advanceShots()

	if core.Elapsed(now, g.patternAt, g.cfg.PatternMs) {
		g.pattern = (g.pattern + 1) % len(g.cfg.Patterns)
		g.patternAt = now
	}
	g.attack(now)
	hit := g.advanceProjectiles()

	switch {
	case g.health <= 0:
		g.outcome = Victory
	case hit:
		g.outcome = Defeat
	}
	return g.outcome
}

func (g *Game) movePlayer(in core.InputFrame) {
	speed := float64(g.cfg.PlayerSpeed)
	if in.Held(core.ActionLeft) {
		g.player.X -= speed
	}
	if in.Held(core.ActionRight) {
		g.player.X += speed
	}
	g.player = g.player.ClampTo(g.field)
}

// fire launches a shot from the top center of the player.
func (g *Game) fire() {
	size := float64(g.cfg.ShotSize)
	g.shots = append(g.shots, core.NewRect(g.player.CenterX()-size/2, g.player.Y, size, size))
}

// advanceShots moves player shots up and applies damage on contact.
func (g *Game) advanceShots() {
	speed := float64(g.cfg.ShotSpeed)
	alive := g.shots[:0]
	for _, s := range g.shots {
		s.Y -= speed
		if s.Bottom() < g.field.Y {
			continue
		}
		if s.Intersects(g.boss) {
			g.health = max(g.health-g.cfg.Damage, 0)
			continue
		}
		alive = append(alive, s)
	}
	g.shots = alive
}

// attack fires the current pattern's volley when its period has passed.
func (g *Game) attack(now int64) {
	p := g.cfg.Patterns[g.pattern]
	if p.Kind == config.PatternPause || !core.Elapsed(now, g.lastVolley, p.PeriodMs) {
		return
	}

	size := float64(g.cfg.ShotSize)
	origin := core.NewRect(g.boss.CenterX()-size/2, g.boss.Bottom(), size, size)
	switch p.Kind {
	case config.PatternStraight:
		g.projectiles = append(g.projectiles, Projectile{Kind: KindStraight, Rect: origin})
	case config.PatternSpread:
		for _, a := range p.Angles {
			g.projectiles = append(g.projectiles, Projectile{Kind: KindAngled, Rect: origin, Angle: a})
		}
	}
	g.lastVolley = now
}

// advanceProjectiles moves hostile projectiles, drops those below the
// field, and reports whether any touched the player.
func (g *Game) advanceProjectiles() bool {
	speed := float64(g.cfg.ProjectileSpeed)
	hit := false
	alive := g.projectiles[:0]
	for _, p := range g.projectiles {
		switch p.Kind {
		case KindStraight:
			p.Rect.Y += speed
		case KindAngled:
			p.Rect.X += math.Sin(p.Angle) * g.cfg.AngledDrift
			p.Rect.Y += speed
		default:
			panic(fmt.Sprintf("boss: unknown projectile kind %d", p.Kind))
		}
		if p.Rect.Y > g.field.Bottom() {
			continue
		}
		if p.Rect.Intersects(g.player) {
			hit = true
		}
		alive = append(alive, p)
	}
	g.projectiles = alive
	return hit
}

// Render draws the boss, its health bar, all projectiles, and the player.
func (g *Game) Render(f *core.Frame) {
	f.AddRect(g.boss, core.SpriteBoss)
	width := 200 * float64(g.health) / float64(g.cfg.Health)
	f.AddRect(core.NewRect(50, 20, width, 20), core.SpriteHealthBar)
	for _, s := range g.shots {
		f.AddRect(s, core.SpriteFriendlyShot)
	}
	for _, p := range g.projectiles {
		f.AddRect(p.Rect, core.SpriteHostileShot)
	}
	f.AddRect(g.player, core.SpritePlayer)
	f.AddText(50, 50, fmt.Sprintf("Boss health: %d", g.health))
}

// Health returns the boss's remaining health, never below zero.
func (g *Game) Health() int {
	return g.health
}

// Player returns the player rectangle.
func (g *Game) Player() core.Rect {
	return g.player
}

// Boss returns the boss rectangle.
func (g *Game) Boss() core.Rect {
	return g.boss
}

// Shots returns the player's live shots.
func (g *Game) Shots() []core.Rect {
	return g.shots
}

// Projectiles returns the live hostile projectiles.
func (g *Game) Projectiles() []Projectile {
	return g.projectiles
}

// Pattern returns the index of the active attack pattern.
func (g *Game) Pattern() int {
	return g.pattern
}
