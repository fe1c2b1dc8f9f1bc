// Package config turns the command line into the settings a session runs
// with.
package config

import (
	"math"
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/log"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Chart        string // Empty plays the bundled chart
	Mode         game.Mode
	SyncTest     bool
	Seed         int64
	FramePeriod  time.Duration
	Delay        time.Duration
	LogLevel     string
	LogFile      string
	Audio        bool
	CameraHeight float64
	SwordReach   float64
	PunchReach   float64
	PoolSize     int
	Lookahead    float64 // Seconds of chart spawned ahead of the player
	Speed        float64 // World units travelled per second of song
	KeysLeft     []rune
	KeysRight    []rune
}

// KeyCuts is the order cut directions are bound to the keys of each hand.
var KeyCuts = [...]game.CutDirection{
	game.CutUp, game.CutLeft, game.CutDown, game.CutRight,
	game.CutUpLeft, game.CutUpRight, game.CutDownLeft, game.CutDownRight,
}

// Parse reads args, not including the program name.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("saber", "Slice the beats that fly at you.")
	app.Version(Version)

	var (
		c         Config
		mode      string
		fps       float64
		keysLeft  string
		keysRight string
	)
	app.Arg("chart", "Chart file, the bundled chart when omitted").ExistingFileVar(&c.Chart)
	app.Flag("mode", "Game mode").Default("classic").Short('m').EnumVar(&mode, "classic", "punch", "ride")
	app.Flag("synctest", "Hit every beat as it arrives").BoolVar(&c.SyncTest)
	app.Flag("seed", "Random seed, 0 picks one from the clock").Default("0").Int64Var(&c.Seed)
	app.Flag("fps", "Frames per second").Default("60").Float64Var(&fps)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&c.Delay)
	app.Flag("log-level", "Log level").Default("info").EnumVar(&c.LogLevel, log.Levels...)
	app.Flag("log-file", "Log destination").Default("saber.log").StringVar(&c.LogFile)
	app.Flag("audio", "Play hit sounds").BoolVar(&c.Audio)
	app.Flag("camera-height", "Player head height").Default("1.6").Float64Var(&c.CameraHeight)
	app.Flag("sword-reach", "Sword reach ahead of the player").Default("1.5").Float64Var(&c.SwordReach)
	app.Flag("punch-reach", "Punch reach ahead of the player").Default("0.5").Float64Var(&c.PunchReach)
	app.Flag("pool-size", "Beats per pool").Default("12").IntVar(&c.PoolSize)
	app.Flag("lookahead", "Seconds of chart spawned ahead").Default("3").Float64Var(&c.Lookahead)
	app.Flag("speed", "Travel speed in units per second").Default("4").Short('s').Float64Var(&c.Speed)
	app.Flag("keys-left", "Left hand keys: up left down right upleft upright downleft downright").Default("wasdqezc").StringVar(&keysLeft)
	app.Flag("keys-right", "Right hand keys, same order").Default("ikjluom.").StringVar(&keysRight)

	if _, err := app.Parse(args); nil != err {
		return nil, errors.Wrap(err, "parse arguments")
	}

	var err error
	if c.Mode, err = game.ParseMode(mode); nil != err {
		return nil, err
	}
	c.KeysLeft, c.KeysRight = []rune(keysLeft), []rune(keysRight)

	switch {
	case fps <= 0:
		return nil, errors.Errorf("fps %.1f must be positive", fps)
	case c.PoolSize < 1:
		return nil, errors.Errorf("pool size %d must be at least 1", c.PoolSize)
	case c.Speed <= 0:
		return nil, errors.Errorf("speed %.2f must be positive", c.Speed)
	case c.Lookahead < 0:
		return nil, errors.Errorf("lookahead %.2f must not be negative", c.Lookahead)
	case c.SwordReach < 0 || c.PunchReach < 0:
		return nil, errors.New("reach must not be negative")
	case c.Lookahead < math.Max(c.SwordReach, c.PunchReach)/c.Speed:
		return nil, errors.Errorf("lookahead %.2f is shorter than the weapon reach", c.Lookahead)
	case c.CameraHeight <= 0:
		return nil, errors.Errorf("camera height %.2f must be positive", c.CameraHeight)
	case len(c.KeysLeft) != len(KeyCuts) || len(c.KeysRight) != len(KeyCuts):
		return nil, errors.Errorf("each hand needs %d keys", len(KeyCuts))
	}
	if dup := duplicate(append(append([]rune{}, c.KeysLeft...), c.KeysRight...)); dup != 0 {
		return nil, errors.Errorf("key %q bound twice", dup)
	}
	c.FramePeriod = time.Duration(float64(time.Second) / fps)
	return &c, nil
}

func duplicate(keys []rune) rune {
	seen := make(map[rune]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return k
		}
		seen[k] = true
	}
	return 0
}

// KeyCut finds the hand and cut direction bound to r.
func (c *Config) KeyCut(r rune) (game.Hand, game.CutDirection, bool) {
	for i, k := range c.KeysLeft {
		if k == r {
			return game.LeftHand, KeyCuts[i], true
		}
	}
	for i, k := range c.KeysRight {
		if k == r {
			return game.RightHand, KeyCuts[i], true
		}
	}
	return 0, game.CutNone, false
}
