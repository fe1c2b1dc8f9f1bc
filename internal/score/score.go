package score

import (
	"math"

	"git.lost.host/meutraa/saber/internal/game"
)

const (
	Max = 100

	// SuperThreshold is the score a hit must beat to earn the super effect.
	SuperThreshold = 80

	speedShare     = 80.0
	directionShare = 20.0

	bladeSuperSpeed     = 10.0
	bladeSuperSpeedDown = 22.0

	punchBase       = 60.0
	punchBonus      = 40.0
	punchSuperSpeed = 6.0
)

var (
	// AngleSuper is the stroke error below which the direction share is full.
	AngleSuper = game.DegToRad(10)
	// AngleThreshold is the stroke error past which a cut counts as the wrong
	// direction.
	AngleThreshold = game.DegToRad(40)
)

// Blade scores a bladed strike from its speed and the angle in radians
// between stroke and required cut. Down cuts are easier so they need more
// speed for full credit.
func Blade(t game.BeatType, cut game.CutDirection, speed, angle float64) int {
	superSpeed := bladeSuperSpeed
	if cut == game.CutDown {
		superSpeed = bladeSuperSpeedDown
	}
	score := math.Min(speed/superSpeed, 1) * speedShare

	switch {
	case t == game.Stationary:
		score += directionShare
	case angle <= AngleSuper:
		score += directionShare
	case angle < AngleThreshold:
		score += (AngleThreshold - angle) / AngleThreshold * directionShare
	}
	return clamp(math.Round(score))
}

// Punch gives most of the score for any contact and the rest for speed.
func Punch(speed float64) int {
	return clamp(math.Round(punchBase + math.Min(speed/punchSuperSpeed, 1)*punchBonus))
}

func IsSuper(score int) bool {
	return score > SuperThreshold
}

func clamp(s float64) int {
	if s < 0 {
		return 0
	}
	if s > Max {
		return Max
	}
	return int(s)
}
