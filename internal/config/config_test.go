package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)

	require.Empty(t, c.Chart)
	require.Equal(t, game.ModeClassic, c.Mode)
	require.False(t, c.SyncTest)
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, 1.5, c.SwordReach)
	require.Equal(t, 0.5, c.PunchReach)
	require.Equal(t, 1.6, c.CameraHeight)
	require.Equal(t, 12, c.PoolSize)
	require.Equal(t, time.Second/60, c.FramePeriod)
}

func TestFlags(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "song.yaml")
	require.NoError(t, os.WriteFile(chart, []byte("notes: []"), 0o644))

	c, err := Parse([]string{chart, "--mode", "punch", "--synctest", "--seed", "7", "--fps", "120", "--pool-size", "3"})
	require.NoError(t, err)

	require.Equal(t, chart, c.Chart)
	require.Equal(t, game.ModePunch, c.Mode)
	require.True(t, c.SyncTest)
	require.EqualValues(t, 7, c.Seed)
	require.Equal(t, 3, c.PoolSize)
	fps := 120.0
	require.Equal(t, time.Duration(float64(time.Second)/fps), c.FramePeriod)
}

func TestInvalid(t *testing.T) {
	tests := map[string][]string{
		"mode":       {"--mode", "dance"},
		"level":      {"--log-level", "loud"},
		"missing":    {"testdata/nope.yaml"},
		"fps":        {"--fps", "0"},
		"pool":       {"--pool-size", "0"},
		"speed":      {"--speed", "-1"},
		"lookahead":  {"--lookahead", "-1"},
		"reach":      {"--sword-reach", "-1"},
		"short look": {"--lookahead", "0.2"},
		"camera":     {"--camera-height", "0"},
		"short keys": {"--keys-left", "wasd"},
		"duplicate":  {"--keys-right", "wkjluom."},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(args)
			require.Error(t, err)
		})
	}
}

func TestKeyCut(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)

	h, cut, ok := c.KeyCut('s')
	require.True(t, ok)
	require.Equal(t, game.LeftHand, h)
	require.Equal(t, game.CutDown, cut)

	h, cut, ok = c.KeyCut('o')
	require.True(t, ok)
	require.Equal(t, game.RightHand, h)
	require.Equal(t, game.CutUpRight, cut)

	_, _, ok = c.KeyCut('x')
	require.False(t, ok)
}
