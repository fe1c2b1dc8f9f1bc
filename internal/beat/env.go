package beat

import (
	"math/rand"

	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/path"
	"go.uber.org/zap"
)

// Visual is the target's on-screen representation.
type Visual interface {
	SetVisible(bool)
}

// Templates resolves a visual by template id. ready may be called later,
// once the underlying asset has loaded.
type Templates interface {
	Resolve(id string, ready func(Visual))
}

// Registry is the live set the judging loop walks every frame.
type Registry interface {
	RegisterBeat(*Beat)
	UnregisterBeat(*Beat)
}

// Releaser takes a finished beat back into its pool.
type Releaser interface {
	Release(*Beat)
}

// Env is shared by every beat of a session.
type Env struct {
	Curve     path.Curve
	Rig       path.Follower
	Rows      *game.RowHeights
	Settings  *game.Settings
	Templates Templates
	Registry  Registry
	Pool      Releaser
	Notifier  fx.Notifier
	Effects   fx.Effects
	Feedback  fx.Feedback
	SuperCuts *fx.SuperCuts
	// Rand picks the warm-up spin direction and auto-hit flourish. Without
	// one every beat spins the same way.
	Rand *rand.Rand
	Log  *zap.Logger
}

func (e *Env) fill() {
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Notifier == nil {
		e.Notifier = fx.Nop{}
	}
	if e.Effects == nil {
		e.Effects = fx.Nop{}
	}
	if e.Feedback == nil {
		e.Feedback = fx.Nop{}
	}
	if e.SuperCuts == nil {
		e.SuperCuts = fx.NewSuperCuts(1)
	}
	if e.Settings == nil {
		e.Settings = &game.Settings{}
	}
	if e.Rows == nil {
		rows := game.NewRowHeights(e.Settings.Mode, 1.6)
		e.Rows = &rows
	}
}

var templateIDs = map[string]string{
	game.PoolKey(game.Directional, game.Red):  "redBeatObjTemplate",
	game.PoolKey(game.Directional, game.Blue): "blueBeatObjTemplate",
	game.PoolKey(game.Stationary, game.Red):   "dotRedObjTemplate",
	game.PoolKey(game.Stationary, game.Blue):  "dotBlueObjTemplate",
	game.PoolKey(game.Hazard, game.Red):       "mineObjTemplate",
}

// TemplateID is the visual template a beat of this kind uses.
func TemplateID(t game.BeatType, c game.Color) string {
	return templateIDs[game.PoolKey(t, c)]
}

// Shown is a Visual that only remembers whether it is visible.
type Shown struct {
	Visible bool
}

func (s *Shown) SetVisible(v bool) { s.Visible = v }

// Instant resolves every template immediately to a fresh Shown.
type Instant struct{}

func (Instant) Resolve(_ string, ready func(Visual)) { ready(&Shown{}) }
