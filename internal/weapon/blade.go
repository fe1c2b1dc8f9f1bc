package weapon

import (
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/score"
)

var _ Weapon = (*Blade)(nil)

// CutThickness pads the target box so a blade grazing an edge still slices.
const CutThickness = 0.02

type Blade struct {
	hand    game.Hand
	tracker BladeTracker

	base, tip, prevTip game.Vec3
	sampled            bool

	strokeSpeed     float64
	strokeDirection game.Vec3
}

func NewBlade(hand game.Hand, tracker BladeTracker) *Blade {
	return &Blade{hand: hand, tracker: tracker}
}

func (b *Blade) Kind() Kind           { return KindBlade }
func (b *Blade) Hand() game.Hand      { return b.hand }
func (b *Blade) Direction() game.Vec3 { return b.strokeDirection }

// StrokeSpeed is the tip speed in world units per second.
func (b *Blade) StrokeSpeed() float64 { return b.strokeSpeed }

// Reset forgets the last sample and stroke so the next refresh sweeps
// nothing and scores a still blade.
func (b *Blade) Reset() {
	b.sampled = false
	b.strokeSpeed = 0
	b.strokeDirection = game.Vec3{}
}

func (b *Blade) Refresh(_, dt time.Duration) {
	base, tip := b.tracker.Blade()
	if !b.sampled {
		b.base, b.tip, b.prevTip = base, tip, tip
		b.sampled = true
		return
	}
	b.prevTip = b.tip
	b.base, b.tip = base, tip

	v := velocity(b.prevTip, b.tip, dt)
	b.strokeSpeed = v.Length()
	// Stroke direction lives in the plane targets face.
	if planar := (game.Vec3{X: v.X, Y: v.Y}); planar.Length() > 0 {
		b.strokeDirection = planar.Normalize()
	}
}

// Overlaps tests the blade and the path its tip swept this frame against a
// slightly padded target box.
func (b *Blade) Overlaps(box game.Box) bool {
	box = box.Expand(CutThickness)
	return box.IntersectsSegment(b.base, b.tip) || box.IntersectsSegment(b.prevTip, b.tip)
}

func (b *Blade) Judge(t game.BeatType, cut game.CutDirection) Verdict {
	var angle float64
	if t == game.Directional {
		angle = b.strokeDirection.AngleTo(cut.Vector())
		if angle > score.AngleThreshold {
			return Verdict{WrongDirection: true}
		}
	}
	return Verdict{Score: score.Blade(t, cut, b.strokeSpeed, angle)}
}
