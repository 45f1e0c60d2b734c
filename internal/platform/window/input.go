package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/magequest/internal/core"
)

// stickDeadZone is the axis magnitude below which a stick counts as centred.
const stickDeadZone = 0.5

var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:  {ebiten.KeySpace},
}

var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeySpace, ebiten.KeyEnter},
	core.ActionSelect1: {ebiten.KeyDigit1},
	core.ActionSelect2: {ebiten.KeyDigit2},
	core.ActionSelect3: {ebiten.KeyDigit3},
	core.ActionSelect4: {ebiten.KeyDigit4},
}

// pollInput samples keyboard, mouse and gamepads for one tick.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()

	for a, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Hold(a)
			}
			if inpututil.IsKeyJustPressed(k) {
				in.Press(a)
			}
		}
	}
	for a, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Press(a)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click(float64(x), float64(y))
	}

	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		pollGamepad(id, &in)
	}
	return in
}

func pollGamepad(id ebiten.GamepadID, in *core.InputFrame) {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}

	h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch {
	case h < -stickDeadZone:
		in.Hold(core.ActionLeft)
	case h > stickDeadZone:
		in.Hold(core.ActionRight)
	}
	switch {
	case v < -stickDeadZone:
		in.Hold(core.ActionUp)
	case v > stickDeadZone:
		in.Hold(core.ActionDown)
	}

	if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		in.Hold(core.ActionFire)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
		in.Press(core.ActionConfirm)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
		in.Quit = true
	}
}
