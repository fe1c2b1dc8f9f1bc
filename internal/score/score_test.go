package score

import (
	"testing"

	"git.lost.host/meutraa/saber/internal/game"
	"github.com/stretchr/testify/require"
)

var bladeTests = []struct {
	name  string
	t     game.BeatType
	cut   game.CutDirection
	speed float64
	angle float64
	score int
}{
	{"down at super angle, full speed", game.Directional, game.CutDown, 22, game.DegToRad(10), 100},
	{"down at super angle, half speed", game.Directional, game.CutDown, 11, game.DegToRad(10), 60},
	{"down past full speed caps", game.Directional, game.CutDown, 50, 0, 100},
	{"up needs less speed", game.Directional, game.CutUp, 10, 0, 100},
	{"up at half speed", game.Directional, game.CutUp, 5, 0, 60},
	{"angle halfway to threshold", game.Directional, game.CutUp, 10, game.DegToRad(20), 90},
	{"angle at threshold", game.Directional, game.CutUp, 10, game.DegToRad(40), 80},
	{"angle past threshold floors", game.Directional, game.CutUp, 10, game.DegToRad(60), 80},
	{"dot ignores angle", game.Stationary, game.CutDown, 22, game.DegToRad(90), 100},
	{"no speed", game.Stationary, game.CutLeft, 0, 0, 20},
}

func TestBlade(t *testing.T) {
	for _, test := range bladeTests {
		t.Run(test.name, func(t *testing.T) {
			s := Blade(test.t, test.cut, test.speed, test.angle)
			require.Equal(t, test.score, s)
			require.GreaterOrEqual(t, s, 0)
			require.LessOrEqual(t, s, Max)
		})
	}
}

func TestPunch(t *testing.T) {
	require.Equal(t, 60, Punch(0))
	require.Equal(t, 80, Punch(3))
	require.Equal(t, 100, Punch(6))
	require.Equal(t, 100, Punch(60))
}

func TestIsSuper(t *testing.T) {
	require.False(t, IsSuper(80))
	require.True(t, IsSuper(81))
}
