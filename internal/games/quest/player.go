package quest

import "github.com/vovakirdan/magequest/internal/config"

// PlayerState is the progress carried across phases of one session.
type PlayerState struct {
	Score      int
	Lives      int
	Magic      int
	Victorious bool // Set when the boss is defeated
}

// NewPlayerState returns a fresh player with full lives and no magic.
func NewPlayerState(cfg config.PlayerConfig) PlayerState {
	return PlayerState{Lives: cfg.Lives}
}

// Reward adds a won drill's score and magic, capping magic at maxMagic.
func (p *PlayerState) Reward(r config.Reward, maxMagic int) {
	p.Score += r.Score
	p.Magic = min(p.Magic+r.Magic, maxMagic)
}

// LoseLife takes one life, never going below zero.
func (p *PlayerState) LoseLife() {
	p.Lives = max(p.Lives-1, 0)
}

// Defeated reports whether the player has run out of lives.
func (p PlayerState) Defeated() bool {
	return p.Lives <= 0
}

// CanFaceBoss reports whether enough magic has been gathered.
func (p PlayerState) CanFaceBoss(required int) bool {
	return p.Magic >= required
}
