package quest

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/games/shoot"
)

const tickMs = 16

// fixedModule stands in for a drill and reports a fixed outcome.
type fixedModule struct {
	out core.Outcome
}

func (m fixedModule) Tick(core.TickContext) core.Outcome { return m.out }
func (m fixedModule) Render(*core.Frame)                 {}

func newTestGame(cfg config.QuestConfig) *Game {
	g := New(cfg, nil)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	return g
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// clock hands out tick timestamps for a test session.
type clock struct {
	core.ManualClock
}

func (c *clock) step(g *Game, in core.InputFrame) {
	g.Step(core.TickContext{Now: c.Advance(tickMs), Input: in})
}

// toHub confirms on the title screen and waits out the story.
func toHub(t *testing.T, g *Game, c *clock) {
	t.Helper()
	c.step(g, pressed(core.ActionConfirm))
	for i := 0; i < 2000 && g.Phase() != PhaseHub; i++ {
		c.step(g, core.NewInputFrame())
	}
	if g.Phase() != PhaseHub {
		t.Fatalf("Phase() = %v, expected hub", g.Phase())
	}
}

// finishDrill forces the running drill to report out on the next tick.
func finishDrill(t *testing.T, g *Game, c *clock, out core.Outcome) {
	t.Helper()
	st, ok := g.stage.(*drillStage)
	if !ok {
		t.Fatalf("stage = %T, expected a drill", g.stage)
	}
	st.module = fixedModule{out: out}
	c.step(g, core.NewInputFrame())
}

func TestQuestStartsAtTitle(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock

	if g.Phase() != PhaseStart {
		t.Fatalf("Phase() = %v, expected start", g.Phase())
	}
	if p := g.Player(); p != (PlayerState{Lives: 3}) {
		t.Errorf("Player() = %+v, expected {0 3 0}", p)
	}

	c.step(g, held(core.ActionConfirm))
	if g.Phase() != PhaseStart {
		t.Error("a held confirm without a press should not leave the title")
	}
	c.step(g, pressed(core.ActionConfirm))
	if g.Phase() != PhaseNarrative {
		t.Errorf("Phase() = %v, expected narrative", g.Phase())
	}
}

func TestQuestNarrativeLeadsToHub(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock

	c.step(g, pressed(core.ActionConfirm))
	c.Advance(11000)
	c.step(g, core.NewInputFrame())
	if g.Phase() != PhaseNarrative {
		t.Fatalf("Phase() = %v, expected the story to still be running", g.Phase())
	}
	toHub(t, g, &c)
}

func TestQuestHubSelectsDrills(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected Phase
	}{
		{core.ActionSelect1, PhaseShoot},
		{core.ActionSelect2, PhaseDodge},
		{core.ActionSelect3, PhaseCatch},
	}

	for _, tc := range tests {
		t.Run(tc.expected.String(), func(t *testing.T) {
			g := newTestGame(config.DefaultQuestConfig())
			var c clock
			toHub(t, g, &c)

			c.step(g, pressed(tc.action))
			if g.Phase() != tc.expected {
				t.Errorf("Phase() = %v, expected %v", g.Phase(), tc.expected)
			}
		})
	}
}

func TestQuestDrillRewards(t *testing.T) {
	tests := []struct {
		action core.Action
		score  int
		magic  int
	}{
		{core.ActionSelect1, 100, 20},
		{core.ActionSelect2, 150, 30},
		{core.ActionSelect3, 120, 25},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			g := newTestGame(config.DefaultQuestConfig())
			var c clock
			toHub(t, g, &c)

			c.step(g, pressed(tc.action))
			finishDrill(t, g, &c, core.OutcomeWon)

			if g.Phase() != PhaseHub {
				t.Fatalf("Phase() = %v, expected hub", g.Phase())
			}
			p := g.Player()
			if p.Score != tc.score || p.Magic != tc.magic || p.Lives != 3 {
				t.Errorf("Player() = %+v, expected score %d magic %d lives 3", p, tc.score, tc.magic)
			}
		})
	}
}

func TestQuestMagicIsCapped(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	for i := 0; i < 5; i++ {
		c.step(g, pressed(core.ActionSelect2))
		finishDrill(t, g, &c, core.OutcomeWon)
		if m := g.Player().Magic; m < 0 || m > 100 {
			t.Fatalf("Magic = %d, expected within [0,100]", m)
		}
	}
	if p := g.Player(); p.Magic != 100 || p.Score != 750 {
		t.Errorf("Player() = %+v, expected magic 100 and score 750", p)
	}
}

func TestQuestLosingEveryLifeEndsTheSession(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	for lives := 2; lives >= 1; lives-- {
		c.step(g, pressed(core.ActionSelect1))
		finishDrill(t, g, &c, core.OutcomeLost)
		if g.Phase() != PhaseHub || g.Player().Lives != lives {
			t.Fatalf("after a loss: phase %v lives %d, expected hub with %d", g.Phase(), g.Player().Lives, lives)
		}
	}

	c.step(g, pressed(core.ActionSelect3))
	finishDrill(t, g, &c, core.OutcomeLost)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", g.Phase())
	}
	if g.Player().Lives != 0 {
		t.Errorf("Lives = %d, expected 0", g.Player().Lives)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be set")
	}
}

func TestQuestNoLivesOverridesAnyPhase(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	c.step(g, pressed(core.ActionSelect1))
	g.player.Lives = 0
	c.step(g, core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
}

func TestQuestBossGate(t *testing.T) {
	tests := []struct {
		magic    int
		expected Phase
	}{
		{0, PhaseHub},
		{99, PhaseHub},
		{100, PhaseBoss},
	}

	for _, tc := range tests {
		t.Run(tc.expected.String(), func(t *testing.T) {
			g := newTestGame(config.DefaultQuestConfig())
			var c clock
			toHub(t, g, &c)

			g.player.Magic = tc.magic
			c.step(g, pressed(core.ActionSelect4))
			if g.Phase() != tc.expected {
				t.Errorf("magic %d: Phase() = %v, expected %v", tc.magic, g.Phase(), tc.expected)
			}
		})
	}
}

func TestQuestBossDefeat(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)
	g.player.Magic = 100
	g.player.Score = 500

	c.step(g, pressed(core.ActionSelect4))
	// Standing still under the boss, the first straight shot lands.
	for i := 0; i < 200 && g.Phase() == PhaseBoss; i++ {
		c.step(g, core.NewInputFrame())
	}

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", g.Phase())
	}
	p := g.Player()
	if p.Lives != 2 || p.Victorious || p.Score != 500 {
		t.Errorf("Player() = %+v, expected one life lost and no victory", p)
	}
	if txt := g.Frame().Text[0].Text; txt != "GAME OVER" {
		t.Errorf("title = %q, expected GAME OVER", txt)
	}
}

func TestQuestBossVictory(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	cfg.Boss.Health = 5
	cfg.Boss.Patterns = []config.AttackPattern{{Kind: config.PatternPause}}

	g := newTestGame(cfg)
	var c clock
	toHub(t, g, &c)
	g.player.Magic = 100

	c.step(g, pressed(core.ActionSelect4))
	for i := 0; i < 200 && g.Phase() == PhaseBoss; i++ {
		c.step(g, held(core.ActionFire))
	}

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", g.Phase())
	}
	p := g.Player()
	if !p.Victorious || p.Lives != 3 || p.Magic != 100 {
		t.Errorf("Player() = %+v, expected a victory with no deltas", p)
	}
	if txt := g.Frame().Text[0].Text; txt != "VICTORY" {
		t.Errorf("title = %q, expected VICTORY", txt)
	}
}

func TestQuestConfirmResetsFromGameOver(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	c.step(g, pressed(core.ActionSelect1))
	finishDrill(t, g, &c, core.OutcomeWon)
	g.player.Lives = 0
	c.step(g, held(core.ActionRight))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected gameover", g.Phase())
	}

	c.step(g, pressed(core.ActionConfirm))
	if g.Phase() != PhaseStart {
		t.Errorf("Phase() = %v, expected start", g.Phase())
	}
	if p := g.Player(); p != (PlayerState{Lives: 3}) {
		t.Errorf("Player() = %+v, expected {0 3 0}", p)
	}
	if g.Avatar() != core.NewRect(380, 280, 40, 40) {
		t.Errorf("Avatar() = %+v, expected it back at the center", g.Avatar())
	}
}

func TestQuestHubAvatarMovesAndClamps(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	start := g.Avatar()
	c.step(g, held(core.ActionRight, core.ActionDown))
	if a := g.Avatar(); a.X != start.X+5 || a.Y != start.Y+5 {
		t.Errorf("Avatar() = %+v, expected a 5px diagonal step from %+v", a, start)
	}

	for i := 0; i < 200; i++ {
		c.step(g, held(core.ActionLeft, core.ActionUp))
	}
	if a := g.Avatar(); a.X != 0 || a.Y != 0 {
		t.Errorf("Avatar() = %+v, expected clamped to the top-left corner", a)
	}
}

func TestQuestQuit(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())

	in := core.NewInputFrame()
	in.Quit = true
	res := g.Step(core.TickContext{Now: 0, Input: in})
	if !res.State.Exit {
		t.Error("a quit signal should set Exit")
	}
}

func TestQuestDeterminism(t *testing.T) {
	script := func() []Snapshot {
		g := newTestGame(config.DefaultQuestConfig())
		var c clock
		toHub(t, g, &c)

		var snaps []Snapshot
		c.step(g, pressed(core.ActionSelect2))
		for i := 0; i < 1200 && g.Phase() == PhaseDodge; i++ {
			in := core.NewInputFrame()
			if i%50 < 25 {
				in.Hold(core.ActionLeft)
			} else {
				in.Hold(core.ActionRight)
			}
			c.step(g, in)
		}
		snaps = append(snaps, g.Snapshot())
		c.step(g, held(core.ActionUp))
		snaps = append(snaps, g.Snapshot())
		return snaps
	}

	a, b := script(), script()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Determinism failed at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestQuestLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := New(config.DefaultQuestConfig(), logger)
	var c clock
	toHub(t, g, &c)
	c.step(g, pressed(core.ActionSelect4))
	c.step(g, pressed(core.ActionSelect1))
	finishDrill(t, g, &c, core.OutcomeWon)

	out := buf.String()
	for _, want := range []string{
		"from=start to=narrative",
		"from=narrative to=hub",
		"boss entry refused",
		"from=shoot to=hub score=100 lives=0 magic=20",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestQuestFrames(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock

	f := g.Frame()
	if f.Phase != "start" || len(f.Text) != 2 || f.Text[0].Text != "MAGE QUEST" {
		t.Errorf("start frame = %+v", f)
	}

	toHub(t, g, &c)
	f = g.Frame()
	if f.Phase != "hub" || f.CountKind(core.SpritePlayer) != 1 {
		t.Errorf("hub frame = %+v", f)
	}
	if len(f.Text) != 7 {
		t.Fatalf("hub text lines = %d, expected 7", len(f.Text))
	}
	if f.Text[2].Text != "Magic: 0/100" {
		t.Errorf("magic counter = %q", f.Text[2].Text)
	}
	if f.Text[6].Text != "4 - Face the Dark Lord (needs 100 magic)" || f.Text[6].Y != 570 {
		t.Errorf("boss menu line = %+v", f.Text[6])
	}

	c.step(g, pressed(core.ActionSelect1))
	c.step(g, core.NewInputFrame())
	if f = g.Frame(); f.Phase != "shoot" || f.CountKind(core.SpriteTarget) == 0 {
		t.Errorf("shoot frame = %+v", f)
	}
}

func TestQuestReconfigureAppliesToNewDrills(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	cfg := config.DefaultQuestConfig()
	cfg.Shoot.Reward.Score = 1
	c.step(g, pressed(core.ActionSelect1))
	g.Reconfigure(cfg)
	finishDrill(t, g, &c, core.OutcomeWon)
	if g.Player().Score != 100 {
		t.Errorf("Score = %d, expected the running drill to keep its reward", g.Player().Score)
	}

	c.step(g, pressed(core.ActionSelect1))
	finishDrill(t, g, &c, core.OutcomeWon)
	if g.Player().Score != 101 {
		t.Errorf("Score = %d, expected the new reward for a new drill", g.Player().Score)
	}
}

func TestQuestShootDrillPlayedThrough(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)
	before := g.Player()

	c.step(g, pressed(core.ActionSelect1))
	for i := 0; i < 2000 && g.Phase() == PhaseShoot; i++ {
		st := g.stage.(*drillStage)
		drill := st.module.(*shoot.Game)

		in := core.NewInputFrame()
		if ts := drill.Targets(); len(ts) > 0 {
			// Aim where the oldest target lands after this tick's move.
			tg := ts[0]
			in.Click(
				tg.Rect.CenterX()+math.Cos(tg.Direction)*tg.Speed,
				tg.Rect.Y+tg.Rect.H/2+math.Sin(tg.Direction)*tg.Speed,
			)
		}
		c.step(g, in)
	}

	if g.Phase() != PhaseHub {
		t.Fatalf("Phase() = %v, expected hub after winning the drill", g.Phase())
	}
	p := g.Player()
	if p.Score-before.Score != 100 || p.Magic-before.Magic != 20 || p.Lives != before.Lives {
		t.Errorf("player = %+v, expected +100 score and +20 magic from %+v", p, before)
	}
}

func TestQuestReconfigureKeepsRunningField(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	cfg := config.DefaultQuestConfig()
	cfg.Field.Width, cfg.Field.Height = 640, 480

	c.step(g, pressed(core.ActionSelect2))
	g.Reconfigure(cfg)
	if f := g.Frame().Field; f.W != 800 || f.H != 600 {
		t.Errorf("running drill field = %+v, expected 800x600", f)
	}

	finishDrill(t, g, &c, core.OutcomeWon)
	if f := g.Frame().Field; f.W != 640 || f.H != 480 {
		t.Errorf("hub field = %+v, expected 640x480 after the drill", f)
	}
	if a := g.Avatar(); a.Right() > 640 || a.Bottom() > 480 {
		t.Errorf("avatar %+v should be clamped into the new field", a)
	}
}

func TestQuestReconfigureInHubAppliesField(t *testing.T) {
	g := newTestGame(config.DefaultQuestConfig())
	var c clock
	toHub(t, g, &c)

	cfg := config.DefaultQuestConfig()
	cfg.Field.Width, cfg.Field.Height = 640, 480
	g.Reconfigure(cfg)
	if f := g.Frame().Field; f.W != 640 || f.H != 480 {
		t.Errorf("hub field = %+v, expected 640x480", f)
	}
}
