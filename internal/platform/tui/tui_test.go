package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/games/quest"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"space fires and confirms", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionFire, core.ActionConfirm}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"d moves right", runeKey('d'), []core.Action{core.ActionRight}},
		{"w moves up", runeKey('w'), []core.Action{core.ActionUp}},
		{"4 selects the boss", runeKey('4'), []core.Action{core.ActionSelect4}},
		{"unbound key", runeKey('x'), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := keys.Actions(tc.msg)
			if len(got) != len(tc.expected) {
				t.Fatalf("Actions() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestInputLatch(t *testing.T) {
	l := newInputLatch(150)

	l.key(core.ActionLeft, 0)
	in := l.frame(10)
	if !in.Held(core.ActionLeft) || !in.Pressed(core.ActionLeft) {
		t.Error("first event should be held and pressed")
	}

	// Auto-repeat keeps the key held without a new press.
	l.key(core.ActionLeft, 100)
	in = l.frame(120)
	if !in.Held(core.ActionLeft) || in.Pressed(core.ActionLeft) {
		t.Error("a repeat should extend the hold without pressing again")
	}

	in = l.frame(250)
	if in.Held(core.ActionLeft) {
		t.Error("a key with no events for the latch window should be released")
	}

	l.key(core.ActionLeft, 300)
	if in = l.frame(310); !in.Pressed(core.ActionLeft) {
		t.Error("an event after release should press again")
	}
}

func TestInputLatchClicksAndQuit(t *testing.T) {
	l := newInputLatch(150)
	l.click(core.Point{X: 10, Y: 20})
	l.quit = true

	in := l.frame(0)
	if len(in.Clicks) != 1 || in.Clicks[0] != (core.Point{X: 10, Y: 20}) {
		t.Errorf("Clicks = %v", in.Clicks)
	}
	if !in.Quit {
		t.Error("Quit should be forwarded")
	}
	if in = l.frame(16); len(in.Clicks) != 0 {
		t.Error("clicks should be drained after one frame")
	}
}

func TestPaintScalesSprites(t *testing.T) {
	screen := core.NewScreen(80, 30)
	f := core.NewFrame("test", core.Field(800, 600))
	f.AddRect(core.NewRect(0, 0, 100, 100), core.SpritePlayer)
	f.AddRect(core.NewRect(400, 300, 1, 1), core.SpriteHostileShot)
	f.AddText(10, 580, "Score: 7")
	f.AddCentered(300, "TITLE", core.StyleTitle)

	Paint(screen, f)

	if c := screen.GetCell(9, 4); c.Rune != SpriteRune || c.Color != core.ColorBlue {
		t.Errorf("player cell = %+v", c)
	}
	if c := screen.GetCell(10, 5); c.Rune != ' ' {
		t.Errorf("cell outside the player = %+v", c)
	}
	if c := screen.GetCell(40, 15); c.Color != core.ColorBrightYellow {
		t.Errorf("centered title should paint over row 15, got %+v", c)
	}
	if c := screen.GetCell(37, 15); c.Rune != 'T' {
		t.Errorf("title start = %q, expected T", c.Rune)
	}
	if !strings.HasPrefix(screen.Row(29)[1:], "Score: 7") {
		t.Errorf("HUD row = %q", screen.Row(29))
	}
}

func TestPaintTinySpriteStillVisible(t *testing.T) {
	screen := core.NewScreen(10, 10)
	f := core.NewFrame("test", core.Field(800, 600))
	f.AddRect(core.NewRect(400, 300, 2, 2), core.SpriteFriendlyShot)

	Paint(screen, f)
	if c := screen.GetCell(5, 5); c.Color != core.ColorGreen {
		t.Errorf("cell = %+v, expected a green shot", c)
	}
}

func TestCellToField(t *testing.T) {
	p := cellToField(0, 0, 80, 30, core.Field(800, 600))
	if p.X != 5 || p.Y != 10 {
		t.Errorf("cellToField(0,0) = %+v, expected (5,10)", p)
	}
	p = cellToField(79, 29, 80, 30, core.Field(800, 600))
	if p.X != 795 || p.Y != 590 {
		t.Errorf("cellToField(79,29) = %+v, expected (795,590)", p)
	}
}

func newTestModel(clock *core.ManualClock) Model {
	g := quest.New(config.DefaultQuestConfig(), nil)
	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Width:   80,
		Height:  31,
		Clock:   clock,
	})
	m.Init()
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelDrivesQuest(t *testing.T) {
	var clock core.ManualClock
	m := newTestModel(&clock)

	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	clock.Advance(16)
	m = update(m, TickMsg{})

	if !strings.Contains(m.View(), "dark power") {
		t.Errorf("expected the first story beat on screen:\n%s", m.View())
	}
}

func TestModelQuit(t *testing.T) {
	var clock core.ManualClock
	m := newTestModel(&clock)

	m = update(m, runeKey('q'))
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the quit key")
	}
	if !next.(Model).State().Exit || next.(Model).View() != "" {
		t.Error("model should be quitting")
	}
}

func TestModelReloadReconfigures(t *testing.T) {
	var clock core.ManualClock
	m := newTestModel(&clock)

	cfg := config.DefaultQuestConfig()
	cfg.Narrative.Beats = []string{"A brand new intro."}
	m = update(m, ReloadMsg(config.Reload{Path: "quest.yaml", Config: cfg}))

	m = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	clock.Advance(16)
	m = update(m, TickMsg{})
	if !strings.Contains(m.View(), "A brand new intro.") {
		t.Errorf("reloaded beats should be used by the next story:\n%s", m.View())
	}
}
