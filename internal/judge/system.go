// Package judge runs the per-frame judging loop: it narrows the live beats
// down to the ones a weapon can reach and classifies every contact.
package judge

import (
	"time"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/path"
	"git.lost.host/meutraa/saber/internal/weapon"
	"go.uber.org/zap"
)

// Reach is how far ahead of the rig, in world units, each weapon kind can
// strike.
type Reach struct {
	Sword float64
	Punch float64
}

var DefaultReach = Reach{Sword: 1.5, Punch: 0.5}

// Live is the registry of beats that may still be judged.
type Live interface {
	EachLive(fn func(*beat.Beat))
}

type Options struct {
	Live     Live
	Curve    path.Curve
	Rig      path.Follower
	Settings *game.Settings
	Rows     *game.RowHeights
	// Blades and Fists are the left and right weapons of each kind.
	Blades       [2]weapon.Weapon
	Fists        [2]weapon.Weapon
	Reach        Reach
	CameraHeight float64
	Log          *zap.Logger
}

type System struct {
	log      *zap.Logger
	live     Live
	curve    path.Curve
	rig      path.Follower
	settings *game.Settings
	rows     *game.RowHeights

	blades, fists [2]weapon.Weapon
	weapons       []weapon.Weapon
	reach         Reach
	cameraHeight  float64
	weaponOffset  float64

	candidates []*beat.Beat
	// cells maps lane+row to 1 + the index of its candidate, 0 when empty.
	cells [game.LaneCount * game.RowCount]int
}

func New(o Options) *System {
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Settings == nil {
		o.Settings = &game.Settings{}
	}
	if o.Rows == nil {
		o.Rows = &game.RowHeights{}
	}
	if o.Reach == (Reach{}) {
		o.Reach = DefaultReach
	}
	s := &System{
		log:          o.Log,
		live:         o.Live,
		curve:        o.Curve,
		rig:          o.Rig,
		settings:     o.Settings,
		rows:         o.Rows,
		blades:       o.Blades,
		fists:        o.Fists,
		reach:        o.Reach,
		cameraHeight: o.CameraHeight,
		candidates:   make([]*beat.Beat, 0, game.LaneCount*game.RowCount),
	}
	s.selectWeapons()
	s.fit()
	return s
}

// Settings is the configuration beats read from. Change it through Update.
func (s *System) Settings() *game.Settings { return s.settings }

func (s *System) WeaponOffset() float64 { return s.weaponOffset }

func (s *System) Rows() *game.RowHeights { return s.rows }

// Reach is the reach in use after defaults.
func (s *System) Reach() Reach { return s.reach }

// Update applies new settings. Row heights and weapon reach are refitted
// when loading finishes; the weapon pair follows the mode.
func (s *System) Update(next game.Settings) {
	old := *s.settings
	*s.settings = next
	if old.Mode != next.Mode {
		s.selectWeapons()
	}
	if old.IsLoading && !next.IsLoading {
		s.fit()
	}
}

// SetCameraHeight takes effect the next time loading finishes.
func (s *System) SetCameraHeight(h float64) { s.cameraHeight = h }

func (s *System) fit() {
	*s.rows = game.NewRowHeights(s.settings.Mode, s.cameraHeight)
	reach := s.reach.Punch
	if s.settings.Mode == game.ModeClassic {
		reach = s.reach.Sword
	}
	s.weaponOffset = path.ReachOffset(s.curve, reach)
}

func (s *System) selectWeapons() {
	switch s.settings.Mode {
	case game.ModeClassic:
		s.weapons = s.blades[:]
	case game.ModePunch:
		s.weapons = s.fists[:]
	default:
		s.weapons = nil
	}
}

// Candidates are the beats the last Tick tested, in test order.
func (s *System) Candidates() []*beat.Beat { return s.candidates }

// Tick judges one frame.
func (s *System) Tick(elapsed, dt time.Duration) {
	if !s.settings.IsPlaying || s.settings.Mode == game.ModeRide {
		return
	}
	if len(s.weapons) != 2 || s.weapons[0] == nil || s.weapons[1] == nil {
		s.log.Warn("no weapons bound", zap.Stringer("mode", s.settings.Mode))
		return
	}

	progress := s.curve.ProgressToSongPosition(s.rig.Progress())
	s.filter(progress)
	if len(s.candidates) == 0 {
		return
	}

	w1, w2 := s.weapons[0], s.weapons[1]
	w1.Refresh(elapsed, dt)
	w2.Refresh(elapsed, dt)

	auto := s.settings.SyncTest || !s.settings.HasImmersiveInput
	for _, b := range s.candidates {
		if auto && b.Type != game.Hazard {
			s.report(b, b.AutoHit(w1))
			continue
		}
		s.check(b, w1, w2)
	}
}

// filter collects the beats within reach. Only the front-most beat of each
// lane and row is kept; the ones behind it wait for a later frame.
func (s *System) filter(progress float64) {
	s.candidates = s.candidates[:0]
	s.cells = [len(s.cells)]int{}

	s.live.EachLive(func(b *beat.Beat) {
		if !b.Judgeable() {
			return
		}
		if progress < b.SongPosition-s.weaponOffset {
			return
		}

		cell := game.Cell(b.Lane, b.Row)
		if i := s.cells[cell]; i > 0 {
			if b.SongPosition < s.candidates[i-1].SongPosition {
				s.candidates[i-1] = b
			}
			return
		}
		s.candidates = append(s.candidates, b)
		s.cells[cell] = len(s.candidates)
	})
}

func (s *System) check(b *beat.Beat, w1, w2 weapon.Weapon) {
	box := b.Bounds()

	if b.Type == game.Hazard {
		if w1.Overlaps(box) {
			s.report(b, b.Hit(w1, false))
			return
		}
		if w2.Overlaps(box) {
			s.report(b, b.Hit(w2, false))
		}
		return
	}

	correct, wrong := w1, w2
	if w1.Hand().Color() != b.Color {
		correct, wrong = w2, w1
	}

	if correct.Overlaps(box) {
		s.report(b, b.Hit(correct, false))
		return
	}

	// A mismatched weapon breaks the beat; it gets no second chance.
	if wrong.Overlaps(box) {
		s.report(b, b.Hit(wrong, true))
	}
}

func (s *System) report(b *beat.Beat, err error) {
	if nil == err {
		return
	}
	s.log.Error("unable to judge beat",
		zap.Stringer("id", b.ID()),
		zap.Stringer("state", b.State()),
		zap.Float64("song_position", b.SongPosition),
		zap.Error(err),
	)
}
