package weapon

import (
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/score"
)

var _ Weapon = (*Fist)(nil)

// FistRadius is the reach of a glove around its tracked centre.
const FistRadius = 0.1

type Fist struct {
	hand    game.Hand
	tracker FistTracker

	position  game.Vec3
	sampled   bool
	speed     float64
	direction game.Vec3
}

func NewFist(hand game.Hand, tracker FistTracker) *Fist {
	return &Fist{hand: hand, tracker: tracker}
}

func (f *Fist) Kind() Kind           { return KindFist }
func (f *Fist) Hand() game.Hand      { return f.hand }
func (f *Fist) Direction() game.Vec3 { return f.direction }
func (f *Fist) Speed() float64       { return f.speed }

// Reset forgets the last sample so the next refresh has no speed.
func (f *Fist) Reset() {
	f.sampled = false
	f.speed = 0
	f.direction = game.Vec3{}
}

func (f *Fist) Refresh(_, dt time.Duration) {
	p := f.tracker.Fist()
	if !f.sampled {
		f.position = p
		f.sampled = true
		return
	}
	v := velocity(f.position, p, dt)
	f.position = p
	f.speed = v.Length()
	if f.speed > 0 {
		f.direction = v.Normalize()
	}
}

func (f *Fist) Overlaps(box game.Box) bool {
	return box.ClosestPoint(f.position).DistanceTo(f.position) <= FistRadius
}

// Judge ignores direction; any contact scores.
func (f *Fist) Judge(game.BeatType, game.CutDirection) Verdict {
	return Verdict{Score: score.Punch(f.speed)}
}
