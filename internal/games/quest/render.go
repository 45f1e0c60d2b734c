package quest

import (
	"fmt"

	"github.com/vovakirdan/magequest/internal/core"
)

var hubMenu = []string{
	"1 - Shooting training",
	"2 - Dodging training",
	"3 - Reaction training",
	"4 - Face the Dark Lord",
}

// Frame returns the draw request for the active phase.
func (g *Game) Frame() *core.Frame {
	f := core.NewFrame(g.Phase().String(), g.field)

	switch st := g.stage.(type) {
	case startStage:
		f.AddCentered(200, "MAGE QUEST", core.StyleTitle)
		f.AddCentered(300, "Press SPACE to begin your journey", core.StyleBody)
	case *narrativeStage:
		st.story.Render(f)
	case hubStage:
		g.renderHub(f)
	case *drillStage:
		st.module.Render(f)
	case *bossStage:
		st.encounter.Render(f)
	case gameOverStage:
		title := "GAME OVER"
		if g.player.Victorious {
			title = "VICTORY"
		}
		f.AddCentered(200, title, core.StyleTitle)
		f.AddCentered(300, fmt.Sprintf("Final score: %d", g.player.Score), core.StyleBody)
		f.AddCentered(400, "Press SPACE to play again", core.StyleBody)
	default:
		panic(fmt.Sprintf("quest: unknown stage %T", st))
	}
	return f
}

func (g *Game) renderHub(f *core.Frame) {
	f.AddRect(g.avatar, core.SpritePlayer)

	f.AddText(10, 10, fmt.Sprintf("Score: %d", g.player.Score))
	f.AddText(10, 50, fmt.Sprintf("Lives: %d", g.player.Lives))
	f.AddText(10, 90, fmt.Sprintf("Magic: %d/%d", g.player.Magic, g.cfg.Player.MaxMagic))

	top := g.field.Bottom() - 120
	for i, line := range hubMenu {
		if i == len(hubMenu)-1 && !g.player.CanFaceBoss(g.cfg.Player.BossMagic) {
			line = fmt.Sprintf("%s (needs %d magic)", line, g.cfg.Player.BossMagic)
		}
		f.AddText(10, top+float64(i*30), line)
	}
}
