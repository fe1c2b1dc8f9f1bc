// Package beat is a single target: its lifecycle, placement, warm-up
// animation, hit classification and scoring.
package beat

import (
	"math"
	"time"

	"git.lost.host/meutraa/saber/internal/easing"
	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/score"
	"git.lost.host/meutraa/saber/internal/weapon"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultSize = 0.45

	WarmupTime  = 2 * time.Second
	DestroyTime = time.Second

	warmupSpin = 2 * math.Pi
	warmupDrop = 0.5

	autoHitCorrectChance = 0.9
)

var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrNoVisual          = errors.New("beat has no visual")
)

var warmupEasing = easing.ElasticOut(1.33, 0.5)

// parked is where a pooled beat waits, well out of view.
var parked = game.Vec3{Z: -9999}

type Beat struct {
	env *Env

	Type    game.BeatType
	Color   game.Color
	Size    float64
	poolKey string
	visual  Visual

	id         uuid.UUID
	state      game.State
	resolution game.Resolution
	registered bool

	SongPosition float64
	Lane         game.Lane
	Row          game.Row
	Cut          game.CutDirection

	pose                          game.Pose
	rotationStart, rotationChange float64
	positionStart, positionChange float64
	warmup                        time.Duration
	cooldown                      time.Duration

	// Notifications wait here for the next tick.
	pendingHit      fx.HitEvent
	hasPendingHit   bool
	pendingNegative game.Resolution
	pendingEvent    fx.BeatEvent
}

// New builds a pooled beat and starts resolving its visual.
func New(env *Env, t game.BeatType, c game.Color) *Beat {
	env.fill()
	b := &Beat{
		env:     env,
		Type:    t,
		Color:   c,
		Size:    DefaultSize,
		poolKey: game.PoolKey(t, c),
		state:   game.Pooled,
	}
	b.pose.Position = parked
	if env.Templates != nil {
		env.Templates.Resolve(TemplateID(t, c), func(v Visual) {
			b.visual = v
			v.SetVisible(false)
		})
	}
	return b
}

func (b *Beat) ID() uuid.UUID               { return b.id }
func (b *Beat) PoolKey() string             { return b.poolKey }
func (b *Beat) State() game.State           { return b.state }
func (b *Beat) Resolution() game.Resolution { return b.resolution }
func (b *Beat) Pose() game.Pose             { return b.pose }

// Bounds is the box weapons are tested against.
func (b *Beat) Bounds() game.Box {
	return game.BoxAround(b.pose.Position, b.Size)
}

// Judgeable reports whether the beat may still be hit.
func (b *Beat) Judgeable() bool {
	return b.state == game.WarmingUp || b.state == game.Live
}

// Spawn places a pooled beat on the path at songPosition and registers it
// with the judging loop.
func (b *Beat) Spawn(songPosition float64, lane game.Lane, row game.Row, cut game.CutDirection) error {
	if b.state != game.Pooled {
		return b.violation(game.Spawning)
	}
	if b.visual == nil {
		b.env.Log.Warn("unable to spawn beat, visual not resolved", zap.String("pool", b.poolKey))
		return ErrNoVisual
	}
	if err := b.transition(game.Spawning); nil != err {
		return err
	}

	if cut == game.CutNone {
		cut = game.CutDown
	}
	b.id = uuid.New()
	b.SongPosition = songPosition
	b.Lane, b.Row, b.Cut = lane, row, cut
	b.resolution = game.Unresolved
	b.warmup = 0
	b.cooldown = 0
	b.hasPendingHit = false
	b.pendingNegative = game.Unresolved

	b.visual.SetVisible(true)

	b.pose = game.Pose{Position: b.env.Curve.PointAt(songPosition)}
	b.env.Curve.Align(songPosition, &b.pose)
	b.pose.Position.X += lane.Offset()
	if b.Type != game.Stationary {
		b.pose.Rotation.Z = game.DegToRad(cut.Degrees())
	}

	b.rotationStart = b.pose.Rotation.Y
	b.rotationChange = warmupSpin
	if b.env.Rand != nil && b.env.Rand.Float64() > 0.5 {
		b.rotationChange = -warmupSpin
	}

	b.pose.Position.Y -= warmupDrop
	b.positionStart = b.pose.Position.Y
	b.positionChange = b.env.Rows.Height(row) + warmupDrop

	b.env.Registry.RegisterBeat(b)
	b.registered = true

	return b.transition(game.WarmingUp)
}

// Tick runs once per frame for every beat out of the pool. It first emits
// whatever notification the previous frame queued.
func (b *Beat) Tick(_, dt time.Duration) {
	b.flush()

	switch b.state {
	case game.CoolingDown:
		b.cooldown -= dt
		if b.cooldown <= 0 {
			if err := b.ReturnToPool(); nil != err {
				b.env.Log.Error("unable to return beat to pool", zap.Error(err))
			}
		}
	case game.WarmingUp, game.Live:
		b.advance(dt)
	}
}

func (b *Beat) advance(dt time.Duration) {
	if b.state == game.WarmingUp {
		if b.warmup < WarmupTime {
			b.applyWarmup(warmupEasing(float64(b.warmup) / float64(WarmupTime)))
			b.warmup += dt
		}
		if b.warmup >= WarmupTime {
			b.settle()
		}
	}

	// Past the player.
	if b.pose.Position.Z > b.env.Rig.Position().Z {
		b.miss()
	}
}

func (b *Beat) applyWarmup(progress float64) {
	b.pose.Rotation.Y = b.rotationStart + progress*b.rotationChange
	b.pose.Position.Y = b.positionStart + progress*b.positionChange
}

// settle finishes the warm-up at once.
func (b *Beat) settle() {
	if b.state != game.WarmingUp {
		return
	}
	b.applyWarmup(1)
	b.warmup = WarmupTime
	if err := b.transition(game.Live); nil != err {
		b.env.Log.Error("unable to settle beat", zap.Error(err))
	}
}

func (b *Beat) miss() {
	b.settle()
	if err := b.resolve(game.Miss); nil != err {
		b.env.Log.Error("unable to miss beat", zap.Error(err))
		return
	}
	b.visual.SetVisible(false)
	b.coolDown()
	if b.Type != game.Hazard {
		b.queueNegative(game.Miss)
	}
}

// Hit classifies a weapon contact. wrong is set when the weapon does not
// match the beat's color; the beat is then marked a wrong hit and destroyed
// in the same call.
func (b *Beat) Hit(w weapon.Weapon, wrong bool) error {
	b.settle()
	if err := b.resolve(game.Unresolved); nil != err {
		return err
	}

	b.env.Feedback.Haptics(w.Hand())
	b.env.Feedback.HitSound(b.pose, b.Cut)

	if wrong {
		b.resolution = game.WrongHit
		b.queueNegative(game.WrongHit)
		return b.Destroy(w, false)
	}

	if b.Type == game.Hazard {
		b.resolution = game.HazardHit
		b.queueNegative(game.HazardHit)
		return b.Destroy(w, false)
	}

	v := w.Judge(b.Type, b.Cut)
	if v.WrongDirection {
		b.resolution = game.WrongHit
		b.queueNegative(game.WrongHit)
		return b.Destroy(w, false)
	}

	b.resolution = game.Hit
	if err := b.Destroy(w, true); nil != err {
		return err
	}
	b.score(v.Score)
	return nil
}

// AutoHit resolves the beat as a perfect hit without any collision test.
func (b *Beat) AutoHit(w weapon.Weapon) error {
	b.settle()
	if err := b.resolve(game.Hit); nil != err {
		return err
	}
	correct := true
	if b.env.Rand != nil {
		correct = b.env.Rand.Float64() < autoHitCorrectChance
	}
	if err := b.Destroy(w, correct); nil != err {
		return err
	}
	b.env.Feedback.Haptics(w.Hand())
	b.env.Feedback.HitSound(b.pose, b.Cut)
	b.queueHit(score.Max)
	return nil
}

// Destroy breaks a resolved beat apart and starts its countdown back to the
// pool. It leaves the judging loop immediately.
func (b *Beat) Destroy(w weapon.Weapon, correctHit bool) error {
	if b.state != game.Resolved {
		return b.violation(game.CoolingDown)
	}
	b.visual.SetVisible(false)
	b.coolDown()

	mode := b.env.Settings.Mode
	ev := fx.ExplodeEvent{
		BeatDirection: b.Cut,
		Color:         b.Color,
		CorrectHit:    correctHit,
		Direction:     w.Direction(),
		Mode:          mode,
		Position:      b.env.Rig.WorldToLocal(b.pose.Position),
		Rotation:      b.pose.Rotation,
	}
	pool := fx.BrokenPool(b.Type, b.Color, mode)
	if !b.env.Effects.Explode(pool, ev) {
		b.env.Log.Debug("broken beat pool exhausted", zap.String("pool", pool))
	}

	if mode == game.ModeClassic && correctHit {
		b.env.Effects.TrailPulse(w.Hand())
	}
	return nil
}

// ReturnToPool parks the beat and hands it back to its pool. Calling it on an
// already pooled beat does nothing.
func (b *Beat) ReturnToPool() error {
	if b.state == game.Pooled {
		return nil
	}
	if err := b.transition(game.Pooled); nil != err {
		return err
	}
	for b.hasPendingHit || b.pendingNegative != game.Unresolved {
		b.flush()
	}
	b.unregister()
	b.pose.Position = parked
	b.visual.SetVisible(false)
	b.env.Pool.Release(b)
	return nil
}

func (b *Beat) score(s int) {
	b.queueHit(s)
	b.env.Effects.GlowText()
	if score.IsSuper(s) {
		b.env.Effects.SuperCut(b.pose, b.Color, b.env.SuperCuts.Next())
	}
}

func (b *Beat) coolDown() {
	b.unregister()
	b.cooldown = DestroyTime
	if err := b.transition(game.CoolingDown); nil != err {
		b.env.Log.Error("unable to cool down beat", zap.Error(err))
	}
}

func (b *Beat) unregister() {
	if !b.registered {
		return
	}
	b.registered = false
	b.env.Registry.UnregisterBeat(b)
}

// resolve moves a live beat to Resolved. Resolving twice is a violation.
func (b *Beat) resolve(r game.Resolution) error {
	if b.state != game.Live {
		return b.violation(game.Resolved)
	}
	if err := b.transition(game.Resolved); nil != err {
		return err
	}
	b.resolution = r
	return nil
}

func (b *Beat) transition(to game.State) error {
	if next(b.state) != to {
		return b.violation(to)
	}
	b.state = to
	return nil
}

func (b *Beat) violation(to game.State) error {
	b.env.Log.Error("invalid beat transition",
		zap.Stringer("id", b.id),
		zap.Stringer("from", b.state),
		zap.Stringer("to", to),
	)
	return errors.Wrapf(ErrInvalidTransition, "%s -> %s", b.state, to)
}

// next is the only state each state may move to.
func next(s game.State) game.State {
	if s == game.CoolingDown {
		return game.Pooled
	}
	return s + 1
}
