// Package weapon adapts the player's two strike instruments for the judging
// loop. Each instrument is either a blade or a fist; the pair in use is
// chosen once per game mode.
package weapon

import (
	"time"

	"git.lost.host/meutraa/saber/internal/game"
)

type Kind uint8

const (
	KindBlade Kind = iota
	KindFist
)

func (k Kind) String() string {
	if k == KindFist {
		return "fist"
	}
	return "blade"
}

// Weapon is refreshed once per frame and then queried once per candidate.
type Weapon interface {
	Kind() Kind
	Hand() game.Hand
	// Refresh recomputes the collision volume and kinematics for this frame.
	Refresh(elapsed, dt time.Duration)
	Overlaps(box game.Box) bool
	// Judge scores a contact with a target of the right color.
	Judge(t game.BeatType, cut game.CutDirection) Verdict
	// Direction is the current stroke direction, zero when still.
	Direction() game.Vec3
}

type Verdict struct {
	Score int
	// WrongDirection is set when the stroke was too far off the required cut
	// to count. Score is meaningless then.
	WrongDirection bool
}

// BladeTracker reports where the blade's handle and tip are this frame.
type BladeTracker interface {
	Blade() (base, tip game.Vec3)
}

// FistTracker reports where the fist is this frame.
type FistTracker interface {
	Fist() game.Vec3
}

// Hold is a tracker that reports whatever it was last set to.
type Hold struct {
	Base, Tip game.Vec3
}

func (h *Hold) Blade() (game.Vec3, game.Vec3) { return h.Base, h.Tip }
func (h *Hold) Fist() game.Vec3               { return h.Tip }

// velocity is the per-second displacement between two samples.
func velocity(prev, cur game.Vec3, dt time.Duration) game.Vec3 {
	if dt <= 0 {
		return game.Vec3{}
	}
	return cur.Sub(prev).Scale(1 / dt.Seconds())
}
