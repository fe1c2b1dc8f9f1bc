// Package sound plays a short tone for every weapon contact. Tones are mixed
// into one stream that an audio device, or a test, pulls samples from.
package sound

import (
	"math"
	"sync"
	"time"

	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"go.uber.org/zap"
)

var _ fx.Feedback = (*Player)(nil)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	ToneLength        = 120 * time.Millisecond
)

// Pitches by cut direction, a pentatonic run so chords never clash.
var pitches = [...]float64{
	game.CutNone:      392.00,
	game.CutUp:        523.25,
	game.CutDown:      261.63,
	game.CutLeft:      329.63,
	game.CutRight:     440.00,
	game.CutUpLeft:    587.33,
	game.CutUpRight:   659.25,
	game.CutDownLeft:  293.66,
	game.CutDownRight: 392.00,
}

type Player struct {
	log    *zap.Logger
	rate   beep.SampleRate
	volume float64

	mu    sync.Mutex
	mixer beep.Mixer
}

// New builds a player. volume is in the exponent steps of effects.Volume,
// zero leaves tones as generated.
func New(rate beep.SampleRate, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	if rate == 0 {
		rate = DefaultSampleRate
	}
	return &Player{log: log, rate: rate, volume: volume}
}

func (p *Player) SampleRate() beep.SampleRate { return p.rate }

// Playing is the number of tones still sounding.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream mixes every sounding tone into samples. It never runs dry.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

func (p *Player) Err() error { return nil }

// HitSound pans the tone for cut towards the side the beat sits on.
func (p *Player) HitSound(pose game.Pose, cut game.CutDirection) {
	freq := pitches[game.CutNone]
	if int(cut) < len(pitches) {
		freq = pitches[cut]
	}

	var s beep.Streamer = tone(p.rate, freq, ToneLength)
	s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	s = &effects.Pan{Streamer: s, Pan: math.Max(-1, math.Min(1, pose.Position.X*2))}

	p.mu.Lock()
	p.mixer.Add(s)
	p.mu.Unlock()
}

// Haptics has nothing to vibrate on a keyboard.
func (p *Player) Haptics(hand game.Hand) {
	p.log.Debug("haptics", zap.Stringer("hand", hand))
}

// tone is a sine at freq that fades out over d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	i := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			fade := 1 - float64(i)/float64(n)
			v := math.Sin(step*float64(i)) * fade * fade * 0.5
			samples[j] = [2]float64{v, v}
			i++
		}
		return len(samples), true
	}))
}
