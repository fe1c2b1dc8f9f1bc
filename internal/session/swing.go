package session

import (
	"math"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/game"
)

// Swing strikes with h along cut at the nearest beat of its color. The
// weapon winds up this frame and strikes on the next.
func (s *Session) Swing(h game.Hand, cut game.CutDirection) {
	if int(h) >= len(s.swings) {
		return
	}
	if cut == game.CutNone {
		cut = game.CutDown
	}
	s.swings[h] = swing{cut: cut, target: s.aim(h)}
}

// aim picks the front-most judgeable beat the hand should hit, or the
// middle of the hand's side of the track when there is none.
func (s *Session) aim(h game.Hand) game.Vec3 {
	var (
		target *beat.Beat
		best   = math.Inf(1)
	)
	s.pool.EachLive(func(b *beat.Beat) {
		if !b.Judgeable() || b.Type == game.Hazard || b.Color != h.Color() {
			return
		}
		if b.SongPosition < best {
			target, best = b, b.SongPosition
		}
	})
	if target != nil {
		return target.Pose().Position
	}

	lane := game.MidLeft
	if h == game.RightHand {
		lane = game.MidRight
	}
	p := s.rig.Position()
	p.X += lane.Offset()
	p.Y = s.judge.Rows().Height(game.Middle)
	return p
}

// swing moves the hands. Blades sweep through the target, fists stop on it.
// Idle hands rest above the track just behind the player. Moving to the
// wind-up or to rest is a jump, not a stroke.
func (s *Session) swing() {
	for h := range s.swings {
		sw := &s.swings[h]
		hold := s.holds[h]
		if sw.cut == game.CutNone || sw.frame > 1 {
			*sw = swing{}
			s.restHand(game.Hand(h))
			continue
		}

		d := sw.cut.Vector().Scale(swingReach)
		if sw.frame == 0 {
			s.jump(game.Hand(h))
			hold.Tip = sw.target.Sub(d)
		} else {
			hold.Tip = sw.target.Add(d)
			if s.judge.Settings().Mode == game.ModePunch {
				hold.Tip = sw.target
			}
		}
		// Hilt towards the player.
		hold.Base = hold.Tip.Add(game.Vec3{Z: hilt})
		sw.frame++
	}
}

func (s *Session) rest() {
	for h := range s.holds {
		s.restHand(game.Hand(h))
	}
}

func (s *Session) jump(h game.Hand) {
	s.blades[h].Reset()
	s.fists[h].Reset()
}

func (s *Session) restHand(h game.Hand) {
	s.jump(h)
	lane := game.MidLeft
	if h == game.RightHand {
		lane = game.MidRight
	}
	p := s.rig.Position()
	p.X += lane.Offset()
	p.Y = restHeight
	p.Z += restBehind
	s.holds[h].Tip = p
	s.holds[h].Base = p.Add(game.Vec3{Z: hilt})
}
