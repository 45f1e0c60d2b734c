package story

import (
	"testing"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
)

func TestStoryAdvancesPerBeat(t *testing.T) {
	s := New(config.DefaultQuestConfig().Narrative, 0)

	steps := []struct {
		now  int64
		beat int
		done bool
	}{
		{3000, 0, false},
		{3001, 1, false},
		{6002, 2, false},
		{9003, 3, false},
		{12003, 3, false},
		{12004, 4, true},
	}
	for _, step := range steps {
		done := s.Tick(step.now)
		if done != step.done || s.Beat() != step.beat {
			t.Errorf("Tick(%d) = %v with beat %d, expected %v with beat %d",
				step.now, done, s.Beat(), step.done, step.beat)
		}
	}
}

func TestStoryDoneIsSticky(t *testing.T) {
	s := New(config.NarrativeConfig{BeatMs: 10, Beats: []string{"only"}}, 0)
	s.Tick(11)
	if !s.Tick(12) || s.Beat() != 1 {
		t.Error("a finished story should stay finished")
	}
}

func TestStoryRender(t *testing.T) {
	cfg := config.DefaultQuestConfig().Narrative
	s := New(cfg, 0)

	f := core.NewFrame("narrative", core.Field(800, 600))
	s.Render(f)
	if len(f.Text) != 1 || f.Text[0].Text != cfg.Beats[0] || f.Text[0].Y != 300 {
		t.Errorf("Text = %+v", f.Text)
	}
	if f.Text[0].Align != core.AlignCenter {
		t.Error("beats should be centered")
	}
}
