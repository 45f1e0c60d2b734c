package core

import "math"

// Module is a self-contained timed challenge: a reflex drill or the boss.
// The quest drives exactly one at a time; practice mode drives one alone.
type Module interface {
	// Tick advances the module using the timestamp and input in ctx.
	// Once a terminal outcome is returned, later calls return it unchanged.
	Tick(ctx TickContext) Outcome

	// Render appends the module's sprites and HUD text to f.
	Render(f *Frame)
}

// Never is a timestamp far enough in the past that any timer measured
// from it has already elapsed.
const Never int64 = math.MinInt64 / 2

// Elapsed reports whether strictly more than periodMs milliseconds have
// passed between since and now.
func Elapsed(now, since int64, periodMs int) bool {
	return now-since > int64(periodMs)
}

// Field returns the play-field rectangle anchored at the origin.
func Field(width, height int) Rect {
	return NewRect(0, 0, float64(width), float64(height))
}
