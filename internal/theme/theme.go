package theme

import "git.lost.host/meutraa/saber/internal/game"

type Color struct {
	R, G, B uint8
}

type Theme interface {
	RenderBeat(t game.BeatType, c game.Color, cut game.CutDirection) string
	RenderBroken(t game.BeatType, c game.Color, correct bool) string
	RenderHitField(lane game.Lane) string
	RenderHand(h game.Hand, pulsing bool) string
}
