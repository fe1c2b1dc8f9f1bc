package chart

import (
	"sort"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/game"
	"go.uber.org/zap"
)

// Pool is where the generator draws beats from.
type Pool interface {
	Acquire(key string) (*beat.Beat, bool)
	Release(b *beat.Beat)
}

// Generator walks a chart in time order and spawns each note once the song
// is within lookahead of it.
type Generator struct {
	log       *zap.Logger
	chart     *game.Chart
	pool      Pool
	lookahead float64
	cursor    int
	dropped   int
}

func NewGenerator(c *game.Chart, p Pool, lookahead float64, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		log:       log,
		chart:     c,
		pool:      p,
		lookahead: lookahead,
	}
}

// Spawn spawns every note due by songPosition + lookahead and returns how
// many made it out. Notes that cannot get a beat are dropped for good.
func (g *Generator) Spawn(songPosition float64) int {
	spawned := 0
	notes := g.chart.Notes
	for g.cursor < len(notes) && notes[g.cursor].Time <= songPosition+g.lookahead {
		n := notes[g.cursor]
		g.cursor++

		b, ok := g.pool.Acquire(n.PoolKey())
		if !ok {
			g.drop(n, "pool exhausted")
			continue
		}
		if err := b.Spawn(n.Time, n.Lane, n.Row, n.Cut); nil != err {
			g.pool.Release(b)
			g.drop(n, err.Error())
			continue
		}
		spawned++
	}
	return spawned
}

func (g *Generator) drop(n *game.Note, reason string) {
	g.dropped++
	g.log.Debug("dropped note",
		zap.Float64("time", n.Time),
		zap.String("pool", n.PoolKey()),
		zap.String("reason", reason),
	)
}

// Cover raises the lookahead to at least offset so no note spawns after its
// hit window has opened.
func (g *Generator) Cover(offset float64) {
	if g.lookahead < offset {
		g.log.Debug("lookahead raised to weapon reach",
			zap.Float64("lookahead", g.lookahead),
			zap.Float64("offset", offset),
		)
		g.lookahead = offset
	}
}

func (g *Generator) Lookahead() float64 { return g.lookahead }

// Seek moves the cursor to the first note at or after songPosition.
func (g *Generator) Seek(songPosition float64) {
	notes := g.chart.Notes
	g.cursor = sort.Search(len(notes), func(i int) bool { return notes[i].Time >= songPosition })
}

// Done reports whether every note has been handed out or dropped.
func (g *Generator) Done() bool { return g.cursor >= len(g.chart.Notes) }

func (g *Generator) Dropped() int { return g.dropped }

// End is the time of the last note, zero for an empty chart.
func (g *Generator) End() float64 {
	if len(g.chart.Notes) == 0 {
		return 0
	}
	return g.chart.Notes[len(g.chart.Notes)-1].Time
}
