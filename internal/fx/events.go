// Package fx carries judged notifications and fire-and-forget effect
// requests out of the judging core.
package fx

import (
	"git.lost.host/meutraa/saber/internal/game"
	"github.com/google/uuid"
)

// BeatEvent identifies the target a notification is about.
type BeatEvent struct {
	ID           uuid.UUID
	Type         game.BeatType
	Color        game.Color
	Cut          game.CutDirection
	Lane         game.Lane
	Row          game.Row
	SongPosition float64
	Position     game.Vec3
	Mode         game.Mode
}

type HitEvent struct {
	BeatEvent
	Score int
}

// Notifier receives the hit, wrong, miss and hazard-hit notifications.
type Notifier interface {
	BeatHit(HitEvent)
	BeatWrong(BeatEvent)
	BeatMiss(BeatEvent)
	HazardHit(BeatEvent)
}

// ExplodeEvent is the payload handed to a broken-beat effect.
type ExplodeEvent struct {
	BeatDirection game.CutDirection
	Color         game.Color
	CorrectHit    bool
	Direction     game.Vec3
	Mode          game.Mode
	Position      game.Vec3 // Relative to the rig
	Rotation      game.Euler
}

// Effects are visual requests. Explode reports false when the named effect
// pool has nothing free.
type Effects interface {
	Explode(pool string, ev ExplodeEvent) bool
	SuperCut(pose game.Pose, color game.Color, slot int)
	TrailPulse(hand game.Hand)
	GlowText()
}

// Feedback is haptics and audio for a weapon contact.
type Feedback interface {
	Haptics(hand game.Hand)
	HitSound(pose game.Pose, cut game.CutDirection)
}

// BrokenPool names the effect pool a destroyed target draws its broken
// pieces from.
func BrokenPool(t game.BeatType, c game.Color, mode game.Mode) string {
	if t == game.Hazard {
		return "beat-broken-mine"
	}
	prefix := "punch"
	if mode == game.ModeClassic {
		prefix = "beat"
	}
	name := prefix + "-broken-" + c.String()
	if t == game.Stationary {
		name += "-dot"
	}
	return name
}
