package render

import (
	"context"
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/theme"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(col, row uint16, content string, frames int)
	// RenderLoop calls render once per period until it returns false or ctx
	// is done.
	RenderLoop(ctx context.Context, delay, period time.Duration, render func(elapsed, dt time.Duration) bool) error
	Fill(row, column uint16, message string)
	FillColor(row, column uint16, color theme.Color, message string)
	Beat(t game.BeatType, c game.Color, cut game.CutDirection, lane game.Lane, ahead float64)
	Status(lines ...string)
}
