// Package story plays the timed introduction shown before the hub.
package story

import (
	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

// Story shows a fixed sequence of beats, one at a time.
type Story struct {
	beats  []string
	beatMs int
	index  int
	beatAt int64
}

// New starts the first beat at now.
func New(cfg config.NarrativeConfig, now int64) *Story {
	return &Story{beats: cfg.Beats, beatMs: cfg.BeatMs, beatAt: now}
}

// Tick advances to the next beat when the current one has been shown long
// enough. It reports true once every beat has been shown.
func (s *Story) Tick(now int64) bool {
	if s.Done() {
		return true
	}
	if core.Elapsed(now, s.beatAt, s.beatMs) {
		s.index++
		s.beatAt = now
	}
	return s.Done()
}

// Done reports whether the sequence has finished.
func (s *Story) Done() bool {
	return s.index >= len(s.beats)
}

// Beat returns the index of the beat on screen.
func (s *Story) Beat() int {
	return s.index
}

// Render draws the current beat centered on the field.
func (s *Story) Render(f *core.Frame) {
	if s.Done() {
		return
	}
	f.AddCentered(f.Field.Y+f.Field.H/2, s.beats[s.index], core.StyleBody)
}
