package beat

import (
	"time"

	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/path"
	"git.lost.host/meutraa/saber/internal/weapon"
)

const frame = 16 * time.Millisecond

type registry struct {
	live        map[*Beat]bool
	unregisters int
}

func (r *registry) RegisterBeat(b *Beat) { r.live[b] = true }
func (r *registry) UnregisterBeat(b *Beat) {
	r.unregisters++
	delete(r.live, b)
}

type releaser struct {
	released []*Beat
}

func (r *releaser) Release(b *Beat) { r.released = append(r.released, b) }

type recorder struct {
	hits   []fx.HitEvent
	wrong  []fx.BeatEvent
	misses []fx.BeatEvent
	mines  []fx.BeatEvent
}

func (r *recorder) BeatHit(e fx.HitEvent)    { r.hits = append(r.hits, e) }
func (r *recorder) BeatWrong(e fx.BeatEvent) { r.wrong = append(r.wrong, e) }
func (r *recorder) BeatMiss(e fx.BeatEvent)  { r.misses = append(r.misses, e) }
func (r *recorder) HazardHit(e fx.BeatEvent) { r.mines = append(r.mines, e) }

func (r *recorder) total() int {
	return len(r.hits) + len(r.wrong) + len(r.misses) + len(r.mines)
}

type effects struct {
	fx.Nop
	pools     []string
	explodes  []fx.ExplodeEvent
	supercuts []int
	pulses    []game.Hand
}

func (e *effects) Explode(pool string, ev fx.ExplodeEvent) bool {
	e.pools = append(e.pools, pool)
	e.explodes = append(e.explodes, ev)
	return true
}

func (e *effects) SuperCut(_ game.Pose, _ game.Color, slot int) {
	e.supercuts = append(e.supercuts, slot)
}

func (e *effects) TrailPulse(h game.Hand) { e.pulses = append(e.pulses, h) }

type feedback struct {
	haptics int
	sounds  int
}

func (f *feedback) Haptics(game.Hand)                     { f.haptics++ }
func (f *feedback) HitSound(game.Pose, game.CutDirection) { f.sounds++ }

// stub is a weapon with a fixed verdict.
type stub struct {
	hand    game.Hand
	verdict weapon.Verdict
}

func (s *stub) Kind() weapon.Kind                                     { return weapon.KindBlade }
func (s *stub) Hand() game.Hand                                       { return s.hand }
func (s *stub) Refresh(_, _ time.Duration)                            {}
func (s *stub) Overlaps(game.Box) bool                                { return true }
func (s *stub) Judge(game.BeatType, game.CutDirection) weapon.Verdict { return s.verdict }
func (s *stub) Direction() game.Vec3                                  { return game.Vec3{Y: 1} }

// deferred holds template callbacks until load is called.
type deferred struct {
	ready []func(Visual)
}

func (d *deferred) Resolve(_ string, ready func(Visual)) { d.ready = append(d.ready, ready) }

func (d *deferred) load() {
	for _, r := range d.ready {
		r(&Shown{})
	}
}

type fixture struct {
	env      *Env
	rig      *path.Rig
	registry *registry
	pool     *releaser
	notes    *recorder
	effects  *effects
	feedback *feedback
}

func newFixture() *fixture {
	line := &path.Line{Speed: 1, Duration: 100}
	f := &fixture{
		rig:      path.NewRig(line),
		registry: &registry{live: map[*Beat]bool{}},
		pool:     &releaser{},
		notes:    &recorder{},
		effects:  &effects{},
		feedback: &feedback{},
	}
	rows := game.NewRowHeights(game.ModeClassic, 1.6)
	f.env = &Env{
		Curve:     line,
		Rig:       f.rig,
		Rows:      &rows,
		Settings:  &game.Settings{Mode: game.ModeClassic, IsPlaying: true},
		Templates: Instant{},
		Registry:  f.registry,
		Pool:      f.pool,
		Notifier:  f.notes,
		Effects:   f.effects,
		Feedback:  f.feedback,
		SuperCuts: fx.NewSuperCuts(3),
	}
	return f
}

// run ticks b for d in frame-sized steps.
func run(b *Beat, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		b.Tick(elapsed, frame)
	}
}
