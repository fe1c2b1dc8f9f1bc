package fx

import (
	"git.lost.host/meutraa/saber/internal/game"
	"go.uber.org/zap"
)

var (
	_ Notifier = Nop{}
	_ Effects  = Nop{}
	_ Feedback = Nop{}
	_ Notifier = Notifiers(nil)
	_ Notifier = (*SafeNotifier)(nil)
	_ Effects  = (*SafeEffects)(nil)
	_ Feedback = (*SafeFeedback)(nil)
)

// Nop drops everything. Explode always succeeds.
type Nop struct{}

func (Nop) BeatHit(HitEvent)                      {}
func (Nop) BeatWrong(BeatEvent)                   {}
func (Nop) BeatMiss(BeatEvent)                    {}
func (Nop) HazardHit(BeatEvent)                   {}
func (Nop) Explode(string, ExplodeEvent) bool     { return true }
func (Nop) SuperCut(game.Pose, game.Color, int)   {}
func (Nop) TrailPulse(game.Hand)                  {}
func (Nop) GlowText()                             {}
func (Nop) Haptics(game.Hand)                     {}
func (Nop) HitSound(game.Pose, game.CutDirection) {}

// Notifiers fans a notification out in order.
type Notifiers []Notifier

func (ns Notifiers) BeatHit(e HitEvent) {
	for _, n := range ns {
		n.BeatHit(e)
	}
}

func (ns Notifiers) BeatWrong(e BeatEvent) {
	for _, n := range ns {
		n.BeatWrong(e)
	}
}

func (ns Notifiers) BeatMiss(e BeatEvent) {
	for _, n := range ns {
		n.BeatMiss(e)
	}
}

func (ns Notifiers) HazardHit(e BeatEvent) {
	for _, n := range ns {
		n.HazardHit(e)
	}
}

// LogNotifier writes every notification at debug level.
type LogNotifier struct {
	Log *zap.Logger
}

func (l LogNotifier) BeatHit(e HitEvent) {
	l.Log.Debug("beat hit", append(fields(e.BeatEvent), zap.Int("score", e.Score))...)
}
func (l LogNotifier) BeatWrong(e BeatEvent) { l.Log.Debug("beat wrong", fields(e)...) }
func (l LogNotifier) BeatMiss(e BeatEvent)  { l.Log.Debug("beat miss", fields(e)...) }
func (l LogNotifier) HazardHit(e BeatEvent) { l.Log.Debug("mine hit", fields(e)...) }

func fields(e BeatEvent) []zap.Field {
	return []zap.Field{
		zap.Stringer("id", e.ID),
		zap.Stringer("type", e.Type),
		zap.Stringer("color", e.Color),
		zap.Stringer("cut", e.Cut),
		zap.Float64("song_position", e.SongPosition),
	}
}

// SafeNotifier keeps a panicking sink from reaching the frame loop.
type SafeNotifier struct {
	Next Notifier
	Log  *zap.Logger
}

func (s *SafeNotifier) BeatHit(e HitEvent) {
	defer recoverSink(s.Log, "beat hit")
	s.Next.BeatHit(e)
}

func (s *SafeNotifier) BeatWrong(e BeatEvent) {
	defer recoverSink(s.Log, "beat wrong")
	s.Next.BeatWrong(e)
}

func (s *SafeNotifier) BeatMiss(e BeatEvent) {
	defer recoverSink(s.Log, "beat miss")
	s.Next.BeatMiss(e)
}

func (s *SafeNotifier) HazardHit(e BeatEvent) {
	defer recoverSink(s.Log, "mine hit")
	s.Next.HazardHit(e)
}

type SafeEffects struct {
	Next Effects
	Log  *zap.Logger
}

// Explode reports false if the sink panicked.
func (s *SafeEffects) Explode(pool string, ev ExplodeEvent) (ok bool) {
	defer recoverSink(s.Log, "explode")
	return s.Next.Explode(pool, ev)
}

func (s *SafeEffects) SuperCut(pose game.Pose, color game.Color, slot int) {
	defer recoverSink(s.Log, "super cut")
	s.Next.SuperCut(pose, color, slot)
}

func (s *SafeEffects) TrailPulse(hand game.Hand) {
	defer recoverSink(s.Log, "trail pulse")
	s.Next.TrailPulse(hand)
}

func (s *SafeEffects) GlowText() {
	defer recoverSink(s.Log, "glow text")
	s.Next.GlowText()
}

type SafeFeedback struct {
	Next Feedback
	Log  *zap.Logger
}

func (s *SafeFeedback) Haptics(hand game.Hand) {
	defer recoverSink(s.Log, "haptics")
	s.Next.Haptics(hand)
}

func (s *SafeFeedback) HitSound(pose game.Pose, cut game.CutDirection) {
	defer recoverSink(s.Log, "hit sound")
	s.Next.HitSound(pose, cut)
}

func recoverSink(log *zap.Logger, sink string) {
	if r := recover(); r != nil {
		log.Error("sink panicked", zap.String("sink", sink), zap.Any("panic", r))
	}
}
