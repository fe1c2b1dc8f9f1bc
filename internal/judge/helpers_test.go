package judge

import (
	"time"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/path"
	"git.lost.host/meutraa/saber/internal/pool"
	"git.lost.host/meutraa/saber/internal/weapon"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

// scripted is a weapon whose contacts are decided by the test.
type scripted struct {
	kind      weapon.Kind
	hand      game.Hand
	touching  bool
	verdict   weapon.Verdict
	refreshes int
	tests     int
}

func (s *scripted) Kind() weapon.Kind          { return s.kind }
func (s *scripted) Hand() game.Hand            { return s.hand }
func (s *scripted) Refresh(_, _ time.Duration) { s.refreshes++ }
func (s *scripted) Direction() game.Vec3       { return game.Vec3{Y: -1} }

func (s *scripted) Overlaps(game.Box) bool {
	s.tests++
	return s.touching
}

func (s *scripted) Judge(game.BeatType, game.CutDirection) weapon.Verdict { return s.verdict }

type explosions struct {
	fx.Nop
	correct []bool
}

func (e *explosions) Explode(_ string, ev fx.ExplodeEvent) bool {
	e.correct = append(e.correct, ev.CorrectHit)
	return true
}

type fixture struct {
	pool     *pool.Coordinator
	rig      *path.Rig
	settings *game.Settings
	system   *System
	effects  *explosions
	left     *scripted
	right    *scripted
	lfist    *scripted
	rfist    *scripted
}

var kinds = []struct {
	t game.BeatType
	c game.Color
}{
	{game.Directional, game.Red},
	{game.Directional, game.Blue},
	{game.Stationary, game.Red},
	{game.Stationary, game.Blue},
	{game.Hazard, game.Red},
}

func newFixture(settings game.Settings) *fixture {
	line := &path.Line{Speed: 1, Duration: 100}
	f := &fixture{
		pool:     pool.New(nil),
		rig:      path.NewRig(line),
		settings: &settings,
		effects:  &explosions{},
		left:     &scripted{kind: weapon.KindBlade, hand: game.LeftHand, verdict: weapon.Verdict{Score: 90}},
		right:    &scripted{kind: weapon.KindBlade, hand: game.RightHand, verdict: weapon.Verdict{Score: 90}},
		lfist:    &scripted{kind: weapon.KindFist, hand: game.LeftHand, verdict: weapon.Verdict{Score: 80}},
		rfist:    &scripted{kind: weapon.KindFist, hand: game.RightHand, verdict: weapon.Verdict{Score: 80}},
	}
	rows := &game.RowHeights{}
	env := &beat.Env{
		Curve:     line,
		Rig:       f.rig,
		Rows:      rows,
		Settings:  f.settings,
		Templates: beat.Instant{},
		Registry:  f.pool,
		Pool:      f.pool,
		Effects:   f.effects,
	}
	for _, k := range kinds {
		k := k
		f.pool.Fill(game.PoolKey(k.t, k.c), 4, func() *beat.Beat { return beat.New(env, k.t, k.c) })
	}
	f.system = New(Options{
		Live:         f.pool,
		Curve:        line,
		Rig:          f.rig,
		Settings:     f.settings,
		Rows:         rows,
		Blades:       [2]weapon.Weapon{f.left, f.right},
		Fists:        [2]weapon.Weapon{f.lfist, f.rfist},
		CameraHeight: 1.6,
	})
	return f
}

func playing() game.Settings {
	return game.Settings{Mode: game.ModeClassic, IsPlaying: true, HasImmersiveInput: true}
}

func (f *fixture) spawn(t require.TestingT, bt game.BeatType, c game.Color, at float64, lane game.Lane, row game.Row) *beat.Beat {
	b, ok := f.pool.Acquire(game.PoolKey(bt, c))
	require.True(t, ok)
	require.NoError(t, b.Spawn(at, lane, row, game.CutDown))
	return b
}

func (f *fixture) tick() {
	f.system.Tick(0, frame)
}
