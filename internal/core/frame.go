package core

// SpriteKind is the colour class of a solid rectangle.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteTarget
	SpriteBoss
	SpriteFriendlyShot
	SpriteHostileShot
	SpriteHealthBar
)

// Sprite is one solid-colour rectangle to draw.
type Sprite struct {
	Rect Rect
	Kind SpriteKind
}

// TextStyle is a typographic hint for the presentation layer.
type TextStyle int

const (
	StyleBody TextStyle = iota
	StyleTitle
	StyleHUD
)

// Align says how X positions a text line.
type Align int

const (
	AlignLeft   Align = iota // X is the left edge
	AlignCenter              // line is centered on the field, X is ignored
)

// TextLine is a line of text anchored at a field position.
type TextLine struct {
	Text  string
	X, Y  float64
	Align Align
	Style TextStyle
}

// Frame is the draw request a game produces each tick.
// The presentation layer turns it into pixels or terminal cells;
// games never touch a drawing surface.
type Frame struct {
	Phase   string
	Field   Rect
	Sprites []Sprite
	Text    []TextLine
}

// NewFrame creates an empty frame for the given phase and field.
func NewFrame(phase string, field Rect) *Frame {
	return &Frame{Phase: phase, Field: field}
}

// AddRect appends a sprite.
func (f *Frame) AddRect(r Rect, kind SpriteKind) {
	f.Sprites = append(f.Sprites, Sprite{Rect: r, Kind: kind})
}

// AddText appends a left-aligned HUD line.
func (f *Frame) AddText(x, y float64, text string) {
	f.Text = append(f.Text, TextLine{Text: text, X: x, Y: y, Align: AlignLeft, Style: StyleHUD})
}

// AddCentered appends a horizontally centered line.
func (f *Frame) AddCentered(y float64, text string, style TextStyle) {
	f.Text = append(f.Text, TextLine{Text: text, Y: y, Align: AlignCenter, Style: style})
}

// CountKind returns how many sprites of a kind the frame holds.
func (f *Frame) CountKind(kind SpriteKind) int {
	n := 0
	for _, s := range f.Sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
