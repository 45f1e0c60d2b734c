// Package shoot implements the moving-target shooting drill.
// Targets drift and bounce around the field; the player clicks them
// before the countdown runs out.
package shoot

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

// Target is a drifting square that can be shot with a click.
type Target struct {
	Rect      core.Rect
	Speed     float64 // Pixels per tick
	Direction float64 // Heading in radians
}

// Game implements the shooting drill.
type Game struct {
	cfg       config.ShootConfig
	field     core.Rect
	rng       *rand.Rand
	targets   []Target
	timeLeft  float64 // Seconds
	score     int
	lastTime  int64
	lastSpawn int64
	outcome   core.Outcome
}

// New creates a drill that starts counting down at now.
func New(cfg config.ShootConfig, field core.Rect, rng *rand.Rand, now int64) *Game {
	return &Game{
		cfg:       cfg,
		field:     field,
		rng:       rng,
		timeLeft:  cfg.DurationS,
		lastTime:  now,
		lastSpawn: core.Never, // spawn on the first tick
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

	if core.Elapsed(now, g.lastSpawn, g.cfg.SpawnMs) {
		g.spawn()
		g.lastSpawn = now
	}

	for i := range g.targets {
		g.targets[i] = g.advance(g.targets[i])
	}

	g.resolveClicks(ctx.Input.Clicks)

	switch {
	case g.score >= g.cfg.RequiredScore:
		g.outcome = core.OutcomeWon
	case g.timeLeft <= 0:
		g.outcome = core.OutcomeLost
	}
	return g.outcome
}

// spawn adds a target at a random position with a random speed and heading.
func (g *Game) spawn() {
	size := g.cfg.TargetSize
	x := g.field.X + float64(g.rng.Intn(int(g.field.W)-size+1))
	y := g.field.Y + float64(g.rng.Intn(int(g.field.H)-size+1))
	speed := g.cfg.MinSpeed + g.rng.Intn(g.cfg.MaxSpeed-g.cfg.MinSpeed+1)

	g.targets = append(g.targets, Target{
		Rect:      core.NewRect(x, y, float64(size), float64(size)),
		Speed:     float64(speed),
		Direction: g.rng.Float64() * 2 * math.Pi,
	})
}

// advance moves a target one tick and turns it at the field edges.
// The turn is an approximation: crossing a side wall maps θ to π−θ,
// crossing the top or bottom maps θ to −θ. The target is not pushed back
// inside, so it may take a few ticks to leave the edge.
func (g *Game) advance(t Target) Target {
	t.Rect = t.Rect.Translate(math.Cos(t.Direction)*t.Speed, math.Sin(t.Direction)*t.Speed)

	if t.Rect.X < g.field.X || t.Rect.Right() > g.field.Right() {
		t.Direction = math.Pi - t.Direction
	}
	if t.Rect.Y < g.field.Y || t.Rect.Bottom() > g.field.Bottom() {
		t.Direction = -t.Direction
	}
	return t
}

// resolveClicks removes every target under a click and scores one point
// per target removed. A target hit by an earlier click in the same tick
// cannot be hit again.
func (g *Game) resolveClicks(clicks []core.Point) {
	if len(clicks) == 0 || len(g.targets) == 0 {
		return
	}

	hit := make([]bool, len(g.targets))
	for _, c := range clicks {
		for i, t := range g.targets {
			if !hit[i] && t.Rect.Contains(c) {
				hit[i] = true
				g.score++
			}
		}
	}

	alive := g.targets[:0]
	for i, t := range g.targets {
		if !hit[i] {
			alive = append(alive, t)
		}
	}
	g.targets = alive
}

// Render draws targets and the HUD.
func (g *Game) Render(f *core.Frame) {
	for _, t := range g.targets {
		f.AddRect(t.Rect, core.SpriteTarget)
	}
	f.AddText(10, 10, fmt.Sprintf("Time: %.1f", math.Max(g.timeLeft, 0)))
	f.AddText(10, 50, fmt.Sprintf("Targets: %d/%d", g.score, g.cfg.RequiredScore))
}

// Targets returns the live targets.
func (g *Game) Targets() []Target {
	return g.targets
}

// Score returns the number of targets hit.
func (g *Game) Score() int {
	return g.score
}

// TimeLeft returns the remaining countdown in seconds.
func (g *Game) TimeLeft() float64 {
	return g.timeLeft
}
