package chart

import (
	"sort"

	"github.com/pkg/errors"
)

type bpm struct {
	StartingBeat float64 `yaml:"beat"`
	Value        float64 `yaml:"bpm"`
}

// tempo is a tempo map sorted by starting beat.
type tempo []bpm

func newTempo(rates []bpm) (tempo, error) {
	t := make(tempo, len(rates))
	copy(t, rates)
	sort.Slice(t, func(i, j int) bool { return t[i].StartingBeat < t[j].StartingBeat })
	for _, r := range t {
		if r.Value <= 0 {
			return nil, errors.Errorf("bpm %.2f at beat %.2f must be positive", r.Value, r.StartingBeat)
		}
	}
	if len(t) > 0 && t[0].StartingBeat > 0 {
		return nil, errors.New("first bpm must start at beat 0")
	}
	return t, nil
}

// seconds is how long the song takes to reach beat.
func (t tempo) seconds(beat float64) float64 {
	total := 0.0
	for i, r := range t {
		end := beat
		if i+1 < len(t) && t[i+1].StartingBeat < beat {
			end = t[i+1].StartingBeat
		}
		if end <= r.StartingBeat {
			break
		}
		total += (end - r.StartingBeat) * 60 / r.Value
	}
	return total
}
