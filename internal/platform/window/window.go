// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/registry"
)

// glyphWidth is the advance of the debug font in pixels.
const glyphWidth = 6

var (
	background = color.RGBA{0, 0, 0, 255}

	spriteColors = map[core.SpriteKind]color.RGBA{
		core.SpritePlayer:       {0, 0, 255, 255},
		core.SpriteTarget:       {255, 0, 0, 255},
		core.SpriteBoss:         {128, 0, 128, 255},
		core.SpriteFriendlyShot: {0, 255, 0, 255},
		core.SpriteHostileShot:  {255, 255, 0, 255},
		core.SpriteHealthBar:    {255, 0, 0, 255},
	}
)

// Options configures a windowed session.
type Options struct {
	Runtime core.RuntimeConfig
	Clock   core.Clock
	Reloads <-chan config.Reload
	Logger  *log.Logger
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game    registry.Game
	clock   core.Clock
	reloads <-chan config.Reload
	logger  *log.Logger
	frame   *core.Frame
}

// New creates a window for game and resets it with the runtime config.
func New(game registry.Game, opts Options) *Window {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(opts.Runtime)
	return &Window{
		game:    game,
		clock:   opts.Clock,
		reloads: opts.Reloads,
		logger:  opts.Logger,
		frame:   game.Frame(),
	}
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	w.pollReload()

	result := w.game.Step(core.TickContext{Now: w.clock.NowMillis(), Input: pollInput()})
	if result.State.Exit {
		return ebiten.Termination
	}
	w.frame = w.game.Frame()
	return nil
}

// pollReload applies at most one pending config reload without blocking.
func (w *Window) pollReload() {
	select {
	case r, ok := <-w.reloads:
		if !ok {
			w.reloads = nil
			return
		}
		if r.Err != nil {
			w.logger.Warn("config reload failed", "path", r.Path, "err", r.Err)
			return
		}
		w.game.Reconfigure(r.Config)
		w.logger.Info("config reloaded", "path", r.Path)
	default:
	}
}

// Draw paints the last frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	f := w.frame

	for _, s := range f.Sprites {
		r := s.Rect
		vector.FillRect(screen,
			float32(r.X-f.Field.X), float32(r.Y-f.Field.Y),
			float32(r.W), float32(r.H),
			spriteColor(s.Kind), false)
	}

	for _, t := range f.Text {
		x, y := textOrigin(t, f.Field)
		ebitenutil.DebugPrintAt(screen, t.Text, x, y)
	}
}

// Layout fixes the logical screen to the field size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.frame.Field.W), int(w.frame.Field.H)
}

func spriteColor(kind core.SpriteKind) color.RGBA {
	if c, ok := spriteColors[kind]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// textOrigin returns the pixel position of a text line's top-left corner.
func textOrigin(t core.TextLine, field core.Rect) (int, int) {
	x := int(t.X - field.X)
	if t.Align == core.AlignCenter {
		x = (int(field.W) - len([]rune(t.Text))*glyphWidth) / 2
	}
	return x, int(t.Y - field.Y)
}

// Run opens the window and blocks until the game exits or the window is
// closed.
func Run(game registry.Game, opts Options) error {
	w := New(game, opts)
	field := w.frame.Field

	ebiten.SetWindowSize(int(field.W), int(field.H))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.Runtime.TickRate)

	w.logger.Info("window session started", "game", game.ID())
	err := ebiten.RunGame(w)
	w.logger.Info("window session ended", "game", game.ID())
	return err
}
