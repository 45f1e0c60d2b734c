package quest

// Snapshot contains the session state visible outside the active module.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Phase      string
	Score      int
	Lives      int
	Magic      int
	Victorious bool
	AvatarX    float64
	AvatarY    float64
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.Phase().String(),
		Score:      g.player.Score,
		Lives:      g.player.Lives,
		Magic:      g.player.Magic,
		Victorious: g.player.Victorious,
		AvatarX:    g.avatar.X,
		AvatarY:    g.avatar.Y,
	}
}
