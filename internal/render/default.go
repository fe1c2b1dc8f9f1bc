// Package render draws the playfield on a terminal: lanes scrolling towards
// a hit bar, broken beats as short-lived decorations and a status column.
package render

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/theme"
)

var (
	_ Renderer   = (*DefaultRenderer)(nil)
	_ fx.Effects = (*DefaultRenderer)(nil)
)

const (
	explodeFrames = 24
	pulseFrames   = 12
	glowFrames    = 24
	superFrames   = 48
)

type Layout struct {
	Rows, Columns int
	Spacing       int     // Columns between lanes
	BarRow        int     // Rows above the bottom edge
	RowsPerUnit   float64 // Screen rows per world unit ahead of the player
}

var DefaultLayout = Layout{Rows: 24, Columns: 80, Spacing: 6, BarRow: 4, RowsPerUnit: 2}

type DefaultRenderer struct {
	out    io.Writer
	theme  theme.Theme
	layout Layout

	buffer      strings.Builder
	decorations []*decoration
	drawn       []cell // beats drawn last frame, cleared on the next
	pulses      [2]int
	glow        int
	status      []string
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

type cell struct {
	row, col uint16
}

func NewDefaultRenderer(out io.Writer, th theme.Theme, layout Layout) *DefaultRenderer {
	if layout.Rows == 0 {
		layout = DefaultLayout
	}
	return &DefaultRenderer{out: out, theme: th, layout: layout}
}

func (r *DefaultRenderer) Init() error {
	_, err := io.WriteString(r.out, "\033[?1049h"+ // Enable alternate buffer
		"\033[?25l"+ // Make the cursor invisible
		"\033[J", // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := io.WriteString(r.out, "\033[?1049l"+ // Disable alternate buffer
		"\033[?25h", // Make the cursor visible
	)
	return err
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, " ")
			continue
		}
		nd = append(nd, d)
		r.Fill(d.Y, d.X, d.Content)
		d.Frames--
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(
	ctx context.Context,
	delay, period time.Duration,
	render func(elapsed, dt time.Duration) bool,
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	startTime := time.Now()
	last := startTime
	for {
		now := time.Now()
		if !render(now.Sub(startTime), now.Sub(last)) {
			r.flush()
			return nil
		}
		last = now

		r.drawHands()
		r.drawStatus()
		r.tickDecorations()
		r.flush()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column uint16, c theme.Color, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

// Clear wipes the beats drawn last frame and redraws the hit bar.
func (r *DefaultRenderer) Clear() {
	for _, c := range r.drawn {
		r.Fill(c.row, c.col, " ")
	}
	r.drawn = r.drawn[:0]
	for l := game.Lane(0); l < game.LaneCount; l++ {
		r.Fill(r.barRow(), r.laneColumn(l), r.theme.RenderHitField(l))
	}
}

// Beat draws a beat ahead world units in front of the player. Beats off the
// top of the screen are skipped.
func (r *DefaultRenderer) Beat(t game.BeatType, c game.Color, cut game.CutDirection, lane game.Lane, ahead float64) {
	row := int(r.barRow()) - int(math.Round(ahead*r.layout.RowsPerUnit))
	if row < 1 || row >= int(r.barRow()) {
		return
	}
	at := cell{row: uint16(row), col: r.laneColumn(lane)}
	r.drawn = append(r.drawn, at)
	r.Fill(at.row, at.col, r.theme.RenderBeat(t, c, cut))
}

// Status replaces the lines shown beside the playfield.
func (r *DefaultRenderer) Status(lines ...string) {
	r.status = append(r.status[:0], lines...)
}

func (r *DefaultRenderer) drawStatus() {
	col := r.sideColumn()
	for i, l := range r.status {
		if r.glow > 0 && i == 0 {
			r.FillColor(uint16(2+i), col, theme.Color{R: 236, G: 195}, l)
			continue
		}
		r.Fill(uint16(2+i), col, l)
	}
	if r.glow > 0 {
		r.glow--
	}
}

func (r *DefaultRenderer) drawHands() {
	row := r.barRow() + 1
	for h, frames := range r.pulses {
		hand := game.Hand(h)
		col := r.laneColumn(game.MidLeft) - 1
		if hand == game.RightHand {
			col = r.laneColumn(game.MidRight) + 1
		}
		r.Fill(row, col, r.theme.RenderHand(hand, frames > 0))
		if frames > 0 {
			r.pulses[h]--
		}
	}
}

// Explode leaves the broken beat on the hit bar for a moment.
func (r *DefaultRenderer) Explode(pool string, ev fx.ExplodeEvent) bool {
	lane := nearestLane(ev.Position.X)
	r.AddDecoration(r.laneColumn(lane), r.barRow()-1,
		r.theme.RenderBroken(brokenType(pool), ev.Color, ev.CorrectHit), explodeFrames)
	return true
}

func (r *DefaultRenderer) SuperCut(_ game.Pose, _ game.Color, slot int) {
	r.AddDecoration(r.sideColumn()+uint16(2*slot), 1, "★", superFrames)
}

func (r *DefaultRenderer) TrailPulse(hand game.Hand) {
	if int(hand) < len(r.pulses) {
		r.pulses[hand] = pulseFrames
	}
}

func (r *DefaultRenderer) GlowText() { r.glow = glowFrames }

func (r *DefaultRenderer) barRow() uint16 {
	return uint16(r.layout.Rows - r.layout.BarRow)
}

func (r *DefaultRenderer) laneColumn(l game.Lane) uint16 {
	mc := r.layout.Columns >> 1
	sp := r.layout.Spacing
	cis := [...]int{mc - sp*3, mc - sp, mc + sp, mc + sp*3}
	return uint16(cis[l])
}

func (r *DefaultRenderer) sideColumn() uint16 {
	col := int(r.laneColumn(game.FarRight)) + 8
	if col >= r.layout.Columns-20 {
		col = r.layout.Columns - 20
	}
	if col < 2 {
		col = 2
	}
	return uint16(col)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}

func nearestLane(x float64) game.Lane {
	best, dist := game.FarLeft, math.Inf(1)
	for l := game.Lane(0); l < game.LaneCount; l++ {
		if d := math.Abs(l.Offset() - x); d < dist {
			best, dist = l, d
		}
	}
	return best
}

// brokenType recovers what broke from the effect pool it asked for.
func brokenType(pool string) game.BeatType {
	switch {
	case pool == fx.BrokenPool(game.Hazard, game.Red, game.ModeClassic):
		return game.Hazard
	case strings.HasSuffix(pool, "-dot"):
		return game.Stationary
	}
	return game.Directional
}
