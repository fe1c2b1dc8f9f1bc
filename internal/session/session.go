// Package session plays one chart: it owns the track, the beat pools, the
// weapons and the judging loop, and advances them together one frame at a
// time.
package session

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/chart"
	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/judge"
	"git.lost.host/meutraa/saber/internal/path"
	"git.lost.host/meutraa/saber/internal/pool"
	"git.lost.host/meutraa/saber/internal/score"
	"git.lost.host/meutraa/saber/internal/weapon"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// tail keeps the track running after the last note so it can be missed.
	tail = 2.0

	superCutSlots = 3
	swingReach    = 0.5
	restHeight    = 3.0
	restBehind    = 0.5
	hilt          = 0.3
)

var poolKinds = []struct {
	t game.BeatType
	c game.Color
}{
	{game.Directional, game.Red},
	{game.Directional, game.Blue},
	{game.Stationary, game.Red},
	{game.Stationary, game.Blue},
	{game.Hazard, game.Red},
}

type Options struct {
	Chart             *game.Chart
	Mode              game.Mode
	SyncTest          bool
	HasImmersiveInput bool
	Seed              int64
	CameraHeight      float64
	Reach             judge.Reach
	PoolSize          int
	Lookahead         float64
	Speed             float64

	Templates beat.Templates
	Notifiers []fx.Notifier
	Effects   fx.Effects
	Feedback  fx.Feedback
	Log       *zap.Logger
}

type Session struct {
	log   *zap.Logger
	chart *game.Chart

	line      *path.Line
	rig       *path.Rig
	pool      *pool.Coordinator
	judge     *judge.System
	generator *chart.Generator
	tally     *score.Tally

	holds  [2]*weapon.Hold
	blades [2]*weapon.Blade
	fists  [2]*weapon.Fist
	swings [2]swing

	elapsed      time.Duration
	songPosition float64
}

type swing struct {
	cut    game.CutDirection
	target game.Vec3
	frame  int // 0 idle, 1 wound up, 2 struck
}

func New(o Options) (*Session, error) {
	if o.Chart == nil || len(o.Chart.Notes) == 0 {
		return nil, chart.ErrEmptyChart
	}
	if o.Speed <= 0 {
		return nil, errors.Errorf("speed %.2f must be positive", o.Speed)
	}
	if o.PoolSize < 1 {
		o.PoolSize = 1
	}
	if o.CameraHeight == 0 {
		o.CameraHeight = 1.6
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Templates == nil {
		o.Templates = beat.Instant{}
	}
	if o.Effects == nil {
		o.Effects = fx.Nop{}
	}
	if o.Feedback == nil {
		o.Feedback = fx.Nop{}
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		log:   o.Log,
		chart: o.Chart,
		tally: &score.Tally{},
		holds: [2]*weapon.Hold{{}, {}},
	}
	last := o.Chart.Notes[len(o.Chart.Notes)-1].Time
	s.line = &path.Line{Speed: o.Speed, Duration: last + tail}
	s.rig = path.NewRig(s.line)
	s.pool = pool.New(o.Log.Named("pool"))

	settings := &game.Settings{
		Mode:              o.Mode,
		HasImmersiveInput: o.HasImmersiveInput,
		SyncTest:          o.SyncTest,
		IsLoading:         true,
	}
	rows := &game.RowHeights{}
	for _, h := range []game.Hand{game.LeftHand, game.RightHand} {
		s.blades[h] = weapon.NewBlade(h, s.holds[h])
		s.fists[h] = weapon.NewFist(h, s.holds[h])
	}

	notifiers := append(fx.Notifiers{s.tally, fx.LogNotifier{Log: o.Log.Named("notify")}}, o.Notifiers...)
	env := &beat.Env{
		Curve:     s.line,
		Rig:       s.rig,
		Rows:      rows,
		Settings:  settings,
		Templates: o.Templates,
		Registry:  s.pool,
		Pool:      s.pool,
		Notifier:  &fx.SafeNotifier{Next: notifiers, Log: o.Log},
		Effects:   &fx.SafeEffects{Next: o.Effects, Log: o.Log},
		Feedback:  &fx.SafeFeedback{Next: o.Feedback, Log: o.Log},
		SuperCuts: fx.NewSuperCuts(superCutSlots),
		Rand:      rand.New(rand.NewSource(seed)),
		Log:       o.Log.Named("beat"),
	}
	for _, k := range poolKinds {
		k := k
		s.pool.Fill(game.PoolKey(k.t, k.c), o.PoolSize, func() *beat.Beat {
			return beat.New(env, k.t, k.c)
		})
	}

	s.judge = judge.New(judge.Options{
		Live:         s.pool,
		Curve:        s.line,
		Rig:          s.rig,
		Settings:     settings,
		Rows:         rows,
		Blades:       [2]weapon.Weapon{s.blades[0], s.blades[1]},
		Fists:        [2]weapon.Weapon{s.fists[0], s.fists[1]},
		Reach:        o.Reach,
		CameraHeight: o.CameraHeight,
		Log:          o.Log.Named("judge"),
	})
	s.generator = chart.NewGenerator(o.Chart, s.pool, o.Lookahead, o.Log.Named("chart"))
	reach := s.judge.Reach()
	s.generator.Cover(path.ReachOffset(s.line, math.Max(reach.Sword, reach.Punch)))
	s.rest()

	o.Log.Info("session ready",
		zap.String("chart", o.Chart.Name),
		zap.Int64("notes", o.Chart.NoteCount),
		zap.Int64("mines", o.Chart.MineCount),
		zap.Stringer("mode", o.Mode),
		zap.Int64("seed", seed),
	)
	return s, nil
}

// Start finishes loading and begins play.
func (s *Session) Start() {
	next := *s.judge.Settings()
	next.IsLoading = false
	next.IsPlaying = true
	s.judge.Update(next)
}

// SetPlaying pauses or resumes judging. The track keeps its place.
func (s *Session) SetPlaying(playing bool) {
	next := *s.judge.Settings()
	next.IsPlaying = playing
	s.judge.Update(next)
}

// SetMode switches the weapon pair between blades and fists.
func (s *Session) SetMode(m game.Mode) {
	next := *s.judge.Settings()
	next.Mode = m
	s.judge.Update(next)
}

func (s *Session) Settings() game.Settings { return *s.judge.Settings() }

// Tick advances the song by dt. It spawns what the chart has due, ticks
// every beat out of the pool and then judges. It reports false once the
// chart is finished.
func (s *Session) Tick(dt time.Duration) bool {
	if s.judge.Settings().IsPlaying {
		s.elapsed += dt
		s.songPosition += dt.Seconds()
		s.rig.SeekSong(s.songPosition)
	}

	s.generator.Spawn(s.songPosition)
	s.pool.EachActive(func(b *beat.Beat) { b.Tick(s.elapsed, dt) })
	s.swing()
	s.judge.Tick(s.elapsed, dt)

	return !s.Finished()
}

// Finished reports whether every note has been spawned and settled.
func (s *Session) Finished() bool {
	return s.generator.Done() && s.pool.Active() == 0
}

func (s *Session) SongPosition() float64 { return s.songPosition }

func (s *Session) Tally() score.Tally { return *s.tally }

func (s *Session) Dropped() int { return s.generator.Dropped() }

// EachActive walks every beat out of the pool with how far ahead of the
// player it is.
func (s *Session) EachActive(fn func(b *beat.Beat, ahead float64)) {
	z := s.rig.Position().Z
	s.pool.EachActive(func(b *beat.Beat) {
		fn(b, z-b.Pose().Position.Z)
	})
}
