package beat

import (
	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
)

func (b *Beat) event() fx.BeatEvent {
	return fx.BeatEvent{
		ID:           b.id,
		Type:         b.Type,
		Color:        b.Color,
		Cut:          b.Cut,
		Lane:         b.Lane,
		Row:          b.Row,
		SongPosition: b.SongPosition,
		Position:     b.pose.Position,
		Mode:         b.env.Settings.Mode,
	}
}

func (b *Beat) queueHit(score int) {
	b.pendingHit = fx.HitEvent{BeatEvent: b.event(), Score: score}
	b.hasPendingHit = true
}

// queueNegative holds a wrong, miss or mine notification. It never displaces
// a queued hit.
func (b *Beat) queueNegative(r game.Resolution) {
	b.pendingNegative = r
	b.pendingEvent = b.event()
}

// flush emits at most one queued notification, hits first.
func (b *Beat) flush() {
	if b.hasPendingHit {
		b.hasPendingHit = false
		b.env.Notifier.BeatHit(b.pendingHit)
		return
	}

	r := b.pendingNegative
	if r == game.Unresolved {
		return
	}
	b.pendingNegative = game.Unresolved
	switch r {
	case game.WrongHit:
		b.env.Notifier.BeatWrong(b.pendingEvent)
	case game.Miss:
		b.env.Notifier.BeatMiss(b.pendingEvent)
	case game.HazardHit:
		b.env.Notifier.HazardHit(b.pendingEvent)
	}
}
