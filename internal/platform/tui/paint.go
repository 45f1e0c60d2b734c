package tui

import (
	"math"

	"github.com/vovakirdan/magequest/internal/core"
)

// SpriteRune is the cell used to draw solid rectangles.
const SpriteRune = '█'

var textColors = map[core.TextStyle]core.Color{
	core.StyleTitle: core.ColorBrightYellow,
	core.StyleBody:  core.ColorWhite,
	core.StyleHUD:   core.ColorBrightWhite,
}

// Paint rasterises a frame onto the screen, scaling the field to fill it.
// Every sprite covers at least one cell so small shots stay visible.
func Paint(dst *core.Screen, f *core.Frame) {
	dst.Clear()
	if f.Field.W <= 0 || f.Field.H <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	cols, rows := float64(dst.Width()), float64(dst.Height())
	col := func(x float64) float64 { return (x - f.Field.X) * cols / f.Field.W }
	row := func(y float64) float64 { return (y - f.Field.Y) * rows / f.Field.H }

	for _, s := range f.Sprites {
		r := s.Rect
		x0 := int(math.Floor(col(r.X)))
		y0 := int(math.Floor(row(r.Y)))
		x1 := max(int(math.Ceil(col(r.Right()))), x0+1)
		y1 := max(int(math.Ceil(row(r.Bottom()))), y0+1)
		dst.FillRect(x0, y0, x1, y1, SpriteRune, core.SpriteColor(s.Kind))
	}

	for _, t := range f.Text {
		x := int(col(t.X))
		if t.Align == core.AlignCenter {
			x = (dst.Width() - len([]rune(t.Text))) / 2
		}
		dst.DrawTextColored(x, int(row(t.Y)), t.Text, textColors[t.Style])
	}
}

// cellToField maps a terminal cell to the field point under its center.
func cellToField(x, y, cols, rows int, field core.Rect) core.Point {
	return core.Point{
		X: field.X + (float64(x)+0.5)*field.W/float64(cols),
		Y: field.Y + (float64(y)+0.5)*field.H/float64(rows),
	}
}
