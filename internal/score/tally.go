package score

import (
	"git.lost.host/meutraa/saber/internal/fx"
)

var _ fx.Notifier = (*Tally)(nil)

// Tally accumulates the judged notifications of one play.
type Tally struct {
	Hits     uint64
	Wrong    uint64
	Misses   uint64
	MineHits uint64
	Supers   uint64
	Total    uint64
	Combo    uint64
	MaxCombo uint64
}

func (t *Tally) BeatHit(e fx.HitEvent) {
	t.Hits++
	t.Total += uint64(e.Score)
	if IsSuper(e.Score) {
		t.Supers++
	}
	t.Combo++
	if t.Combo > t.MaxCombo {
		t.MaxCombo = t.Combo
	}
}

func (t *Tally) BeatWrong(fx.BeatEvent) {
	t.Wrong++
	t.Combo = 0
}

func (t *Tally) BeatMiss(fx.BeatEvent) {
	t.Misses++
	t.Combo = 0
}

func (t *Tally) HazardHit(fx.BeatEvent) {
	t.MineHits++
	t.Combo = 0
}

// Mean is the average score of the successful hits.
func (t *Tally) Mean() float64 {
	if t.Hits == 0 {
		return 0
	}
	return float64(t.Total) / float64(t.Hits)
}

// Judged counts every target that has been resolved against the player.
func (t *Tally) Judged() uint64 {
	return t.Hits + t.Wrong + t.Misses + t.MineHits
}
