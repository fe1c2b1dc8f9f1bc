// Package pool owns every beat of a session: the free lists they are drawn
// from, the set currently out of the pool, and the live registry the judging
// loop walks.
package pool

import (
	"git.lost.host/meutraa/saber/internal/beat"
	"go.uber.org/zap"
)

var (
	_ beat.Registry = (*Coordinator)(nil)
	_ beat.Releaser = (*Coordinator)(nil)
)

type Coordinator struct {
	log    *zap.Logger
	free   map[string][]*beat.Beat
	active *set // out of the pool, ticked every frame
	live   *set // may still be judged
}

func New(log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		log:    log,
		free:   make(map[string][]*beat.Beat),
		active: newSet(64),
		live:   newSet(64),
	}
}

// Fill adds n beats built by create to the free list of key.
func (c *Coordinator) Fill(key string, n int, create func() *beat.Beat) {
	for i := 0; i < n; i++ {
		c.free[key] = append(c.free[key], create())
	}
}

// Acquire takes a beat from the free list of key. It reports false when the
// pool is exhausted; the caller drops whatever it wanted the beat for.
func (c *Coordinator) Acquire(key string) (*beat.Beat, bool) {
	free := c.free[key]
	if len(free) == 0 {
		c.log.Debug("beat pool exhausted", zap.String("pool", key))
		return nil, false
	}
	b := free[len(free)-1]
	free[len(free)-1] = nil
	c.free[key] = free[:len(free)-1]
	c.active.add(b)
	return b, true
}

// Release returns b to its free list. Releasing a beat that is not out of
// the pool does nothing.
func (c *Coordinator) Release(b *beat.Beat) {
	if !c.active.remove(b) {
		c.log.Warn("release of a beat not acquired", zap.String("pool", b.PoolKey()))
		return
	}
	c.live.remove(b)
	c.free[b.PoolKey()] = append(c.free[b.PoolKey()], b)
}

func (c *Coordinator) RegisterBeat(b *beat.Beat)   { c.live.add(b) }
func (c *Coordinator) UnregisterBeat(b *beat.Beat) { c.live.remove(b) }

// EachLive walks the live registry in registration order.
func (c *Coordinator) EachLive(fn func(*beat.Beat)) { c.live.each(fn) }

// EachActive walks every beat out of the pool in acquisition order.
func (c *Coordinator) EachActive(fn func(*beat.Beat)) { c.active.each(fn) }

func (c *Coordinator) Live() int   { return c.live.len() }
func (c *Coordinator) Active() int { return c.active.len() }

func (c *Coordinator) Free(key string) int { return len(c.free[key]) }

func (c *Coordinator) IsLive(b *beat.Beat) bool { return c.live.contains(b) }
