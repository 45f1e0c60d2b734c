// Package catch implements the reaction drill: a single large target pops
// up at random spots and the player must click it while it is visible.
// Each catch shortens the wait before the next appearance.
package catch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

// Game implements the reaction drill.
type Game struct {
	cfg      config.CatchConfig
	field    core.Rect
	rng      *rand.Rand
	target   core.Rect
	visible  bool
	shownAt  int64 // Last appearance, or drill start before the first one
	delay    int   // Current wait between appearances, ms
	timeLeft float64
	score    int
	lastTime int64
	outcome  core.Outcome
}

// New creates a drill that starts counting down at now. The target
// starts hidden at the field center.
func New(cfg config.CatchConfig, field core.Rect, rng *rand.Rand, now int64) *Game {
	size := float64(cfg.TargetSize)
	return &Game{
		cfg:      cfg,
		field:    field,
		rng:      rng,
		target:   core.NewRect(field.CenterX()-size/2, field.Y+field.H/2-size/2, size, size),
		shownAt:  now,
		delay:    cfg.InitialDelayMs,
		timeLeft: cfg.DurationS,
		lastTime: now,
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

	switch {
	case !g.visible && core.Elapsed(now, g.shownAt, g.delay):
		g.show(now)
	case g.visible && core.Elapsed(now, g.shownAt, g.cfg.VisibleMs):
		g.visible = false
	}

	for _, c := range ctx.Input.Clicks {
		g.click(c)
	}

	switch {
	case g.score >= g.cfg.RequiredScore:
		g.outcome = core.OutcomeWon
	case g.timeLeft <= 0:
		g.outcome = core.OutcomeLost
	}
	return g.outcome
}

// show moves the target to a random spot inside the margins.
func (g *Game) show(now int64) {
	size := g.cfg.TargetSize
	margin := g.cfg.Margin
	spanX := int(g.field.W) - 2*margin - size
	spanY := int(g.field.H) - 2*margin - size

	g.target.X = g.field.X + float64(margin+g.rng.Intn(spanX+1))
	g.target.Y = g.field.Y + float64(margin+g.rng.Intn(spanY+1))
	g.visible = true
	g.shownAt = now
}

// click scores a click against the visible target. A hit hides the target
// and shortens the delay; a miss costs a point. Clicks while the target is
// hidden are ignored.
func (g *Game) click(p core.Point) {
	if !g.visible {
		return
	}
	if !g.target.Contains(p) {
		g.score--
		return
	}

	g.score++
	g.visible = false
	g.delay = core.Clamp(g.delay-g.cfg.DelayStepMs, g.cfg.MinDelayMs, g.delay)
}

// Render draws the target when visible and the HUD.
func (g *Game) Render(f *core.Frame) {
	if g.visible {
		f.AddRect(g.target, core.SpriteTarget)
	}
	f.AddText(10, 10, fmt.Sprintf("Time: %.1f", math.Max(g.timeLeft, 0)))
	f.AddText(10, 50, fmt.Sprintf("Points: %d/%d", g.score, g.cfg.RequiredScore))
}

// Target returns the target rectangle and whether it is showing.
func (g *Game) Target() (core.Rect, bool) {
	return g.target, g.visible
}

// Score returns the current points. It can go negative.
func (g *Game) Score() int {
	return g.score
}

// Delay returns the current wait between appearances in milliseconds.
func (g *Game) Delay() int {
	return g.delay
}
