package theme

import (
	"fmt"

	"git.lost.host/meutraa/saber/internal/game"
)

var _ Theme = (*DefaultTheme)(nil)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderBeat(bt game.BeatType, c game.Color, cut game.CutDirection) string {
	switch bt {
	case game.Hazard:
		return paint(mineColor, mineSym)
	case game.Stationary:
		return paint(beatColors[c], dotSym)
	}
	return paint(beatColors[c], arrowSyms[cut])
}

func (t *DefaultTheme) RenderBroken(bt game.BeatType, c game.Color, correct bool) string {
	switch {
	case bt == game.Hazard:
		return paint(mineColor, brokenMineSym)
	case !correct:
		return paint(wrongColor, brokenSym)
	}
	return paint(beatColors[c], brokenSym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane) string {
	return barSyms[lane]
}

func (t *DefaultTheme) RenderHand(h game.Hand, pulsing bool) string {
	if pulsing {
		return paint(glowColor, handSyms[h])
	}
	return paint(beatColors[h.Color()], handSyms[h])
}

func paint(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	mineSym       = "⨯"
	dotSym        = "⬤"
	brokenSym     = "✶"
	brokenMineSym = "✹"
)

var (
	arrowSyms = [...]string{
		game.CutNone:      "⬤",
		game.CutUp:        "↑",
		game.CutDown:      "↓",
		game.CutLeft:      "←",
		game.CutRight:     "→",
		game.CutUpLeft:    "↖",
		game.CutUpRight:   "↗",
		game.CutDownLeft:  "↙",
		game.CutDownRight: "↘",
	}
	barSyms    = [...]string{"-", "-", "-", "-"}
	handSyms   = [...]string{game.LeftHand: "◖", game.RightHand: "◗"}
	beatColors = [...]Color{
		game.Red:  {236, 30, 0},
		game.Blue: {0, 118, 236},
	}
	mineColor  = Color{106, 106, 106}
	wrongColor = Color{106, 0, 236}
	glowColor  = Color{236, 195, 0}
)
