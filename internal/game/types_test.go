package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := ParseMode(" Punch ")
	require.NoError(t, err)
	require.Equal(t, ModePunch, m)

	bt, err := ParseBeatType("mine")
	require.NoError(t, err)
	require.Equal(t, Hazard, bt)

	l, err := ParseLane("middleright")
	require.NoError(t, err)
	require.Equal(t, MidRight, l)

	r, err := ParseRow("top")
	require.NoError(t, err)
	require.Equal(t, Top, r)

	cut, err := ParseCutDirection("")
	require.NoError(t, err)
	require.Equal(t, CutNone, cut)

	cut, err = ParseCutDirection("downleft")
	require.NoError(t, err)
	require.Equal(t, CutDownLeft, cut)

	for _, bad := range []func() error{
		func() error { _, err := ParseMode("dance"); return err },
		func() error { _, err := ParseColor("green"); return err },
		func() error { _, err := ParseLane("centre"); return err },
		func() error { _, err := ParseRow("floor"); return err },
		func() error { _, err := ParseCutDirection("sideways"); return err },
	} {
		require.ErrorIs(t, bad(), ErrUnknownValue)
	}
}

func TestStrings(t *testing.T) {
	require.Equal(t, "ride", ModeRide.String())
	require.Equal(t, "dot", Stationary.String())
	require.Equal(t, "unknown", Mode(9).String())
	require.Equal(t, "cooling-down", CoolingDown.String())
	require.Equal(t, "hazard-hit", HazardHit.String())
}

func TestHandColor(t *testing.T) {
	require.Equal(t, Red, LeftHand.Color())
	require.Equal(t, Blue, RightHand.Color())
}

func TestCells(t *testing.T) {
	seen := map[int]bool{}
	for l := Lane(0); l < LaneCount; l++ {
		for r := Row(0); r < RowCount; r++ {
			c := Cell(l, r)
			require.GreaterOrEqual(t, c, 0)
			require.Less(t, c, LaneCount*RowCount)
			require.False(t, seen[c])
			seen[c] = true
		}
	}
}

func TestCutDirections(t *testing.T) {
	tests := []struct {
		cut     CutDirection
		degrees float64
	}{
		{CutRight, 0},
		{CutUpRight, 45},
		{CutUp, 90},
		{CutUpLeft, 135},
		{CutLeft, 180},
		{CutDownLeft, 225},
		{CutDown, 270},
		{CutDownRight, 315},
	}
	for _, tt := range tests {
		t.Run(tt.cut.String(), func(t *testing.T) {
			require.Equal(t, tt.degrees, tt.cut.Degrees())
			require.InDelta(t, 1, tt.cut.Vector().Length(), 1e-9)
		})
	}
	require.Zero(t, CutNone.Vector().Length())
}

func TestPoolKeys(t *testing.T) {
	require.Equal(t, "beat-mine", PoolKey(Hazard, Blue))
	require.Equal(t, "beat-arrow-red", PoolKey(Directional, Red))
	n := &Note{Type: Stationary, Color: Blue}
	require.Equal(t, "beat-dot-blue", n.PoolKey())
}

func TestRowHeights(t *testing.T) {
	h := NewRowHeights(ModeClassic, 1.6)
	require.InDelta(t, 0.9, h.Height(Bottom), 1e-9)
	require.InDelta(t, 1.4, h.Height(Middle), 1e-9)
	require.InDelta(t, 1.9, h.Height(Top), 1e-9)

	h = NewRowHeights(ModePunch, 1.6)
	require.InDelta(t, 1.3, h.Height(Middle), 1e-9)

	h = NewRowHeights(ModeClassic, 0.5)
	require.Equal(t, 0.4, h.Height(Bottom))
	require.InDelta(t, 0.9, h.Height(Middle), 1e-9)
	require.InDelta(t, 1.4, h.Height(Top), 1e-9)
}
