// Package chart loads note charts and feeds their notes into the beat pool
// as the song approaches them.
package chart

import (
	_ "embed"
	"os"
	"sort"

	"git.lost.host/meutraa/saber/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrEmptyChart = errors.New("chart has no notes")

//go:embed demo.yaml
var demo []byte

// Demo is the chart bundled with the binary.
func Demo() (*game.Chart, error) {
	return Parse(demo)
}

type file struct {
	Name   string  `yaml:"name"`
	Offset float64 `yaml:"offset"`
	BPMs   []bpm   `yaml:"bpms"`
	Notes  []note  `yaml:"notes"`
}

type note struct {
	// Either Beat or Time places the note. Time is in seconds and ignores
	// the tempo map.
	Beat  *float64 `yaml:"beat"`
	Time  *float64 `yaml:"time"`
	Type  string   `yaml:"type"`
	Color string   `yaml:"color"`
	Lane  string   `yaml:"lane"`
	Row   string   `yaml:"row"`
	Cut   string   `yaml:"cut"`
}

// Load reads and parses the chart at path.
func Load(path string) (*game.Chart, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, errors.Wrap(err, "read chart")
	}
	c, err := Parse(data)
	if nil != err {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return c, nil
}

// Parse decodes a YAML chart. Notes come back sorted by time.
func Parse(data []byte) (*game.Chart, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); nil != err {
		return nil, errors.Wrap(err, "decode chart")
	}
	if len(f.Notes) == 0 {
		return nil, ErrEmptyChart
	}

	t, err := newTempo(f.BPMs)
	if nil != err {
		return nil, err
	}

	c := &game.Chart{Name: f.Name, Notes: make([]*game.Note, 0, len(f.Notes))}
	for i, n := range f.Notes {
		gn, err := n.toNote(t, f.Offset)
		if nil != err {
			return nil, errors.Wrapf(err, "note %d", i)
		}
		if gn.Type == game.Hazard {
			c.MineCount++
		} else {
			c.NoteCount++
		}
		c.Notes = append(c.Notes, gn)
	}

	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})
	return c, nil
}

func (n note) toNote(t tempo, offset float64) (*game.Note, error) {
	var (
		gn  game.Note
		err error
	)

	switch {
	case n.Time != nil:
		gn.Time = *n.Time
	case n.Beat != nil:
		if len(t) == 0 {
			return nil, errors.New("beat given without bpms")
		}
		gn.Time = t.seconds(*n.Beat)
	default:
		return nil, errors.New("missing beat or time")
	}
	gn.Time += offset
	if gn.Time < 0 {
		return nil, errors.Errorf("negative time %.3f", gn.Time)
	}

	if gn.Type, err = game.ParseBeatType(n.Type); nil != err {
		return nil, err
	}
	if n.Color != "" || gn.Type != game.Hazard {
		if gn.Color, err = game.ParseColor(n.Color); nil != err {
			return nil, err
		}
	}
	if gn.Lane, err = game.ParseLane(n.Lane); nil != err {
		return nil, err
	}
	if gn.Row, err = game.ParseRow(n.Row); nil != err {
		return nil, err
	}
	if gn.Cut, err = game.ParseCutDirection(n.Cut); nil != err {
		return nil, err
	}
	return &gn, nil
}
