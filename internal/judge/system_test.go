package judge

import (
	"testing"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/game"
	"github.com/stretchr/testify/require"
)

func TestWeaponOffset(t *testing.T) {
	f := newFixture(playing())
	require.InDelta(t, 1.5, f.system.WeaponOffset(), 1e-9)

	f.system.Update(game.Settings{Mode: game.ModePunch, IsPlaying: true, IsLoading: true})
	f.system.Update(game.Settings{Mode: game.ModePunch, IsPlaying: true})
	require.InDelta(t, 0.5, f.system.WeaponOffset(), 1e-9)
}

func TestRowsRefitWhenLoadingEnds(t *testing.T) {
	f := newFixture(playing())
	f.system.SetCameraHeight(2.1)

	f.system.Update(game.Settings{Mode: game.ModeClassic, IsLoading: true})
	require.Equal(t, game.NewRowHeights(game.ModeClassic, 1.6), *f.system.rows)

	f.system.Update(game.Settings{Mode: game.ModeClassic, IsPlaying: true})
	want := game.NewRowHeights(game.ModeClassic, 2.1)
	require.Equal(t, want, *f.system.rows)
}

func TestNothingBeforeReach(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)
	f.left.touching = true

	f.rig.SeekSong(8)
	f.tick()

	require.Empty(t, f.system.Candidates())
	require.Zero(t, f.left.refreshes)
	require.Zero(t, f.left.tests)
	require.Equal(t, game.WarmingUp, b.State())
}

func TestNoEarlyCandidates(t *testing.T) {
	f := newFixture(playing())
	for i := 0; i < 4; i++ {
		f.spawn(t, game.Directional, game.Blue, float64(5+i*3), game.Lane(i), game.Middle)
	}
	for _, at := range []float64{0, 3, 6, 9, 12} {
		f.rig.SeekSong(at)
		f.tick()
		progress := f.rig.SongPosition()
		for _, b := range f.system.Candidates() {
			require.GreaterOrEqual(t, progress, b.SongPosition-f.system.WeaponOffset())
		}
	}
}

func TestCorrectWeaponHits(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)
	f.left.touching = true
	f.right.touching = true

	f.rig.SeekSong(9)
	f.tick()

	require.Equal(t, 1, f.left.refreshes)
	require.Equal(t, 1, f.right.refreshes)
	require.Equal(t, game.Hit, b.Resolution())
	require.Equal(t, game.CoolingDown, b.State())
	require.Equal(t, []bool{true}, f.effects.correct)
	require.Zero(t, f.right.tests)

	f.tick()
	require.Empty(t, f.system.Candidates())
	require.Equal(t, 1, f.left.refreshes)
}

func TestColorPicksWeapon(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Stationary, game.Blue, 10, game.MidRight, game.Middle)
	f.right.touching = true

	f.rig.SeekSong(9)
	f.tick()

	require.Equal(t, game.Hit, b.Resolution())
	require.Equal(t, 1, f.right.tests)
	require.Zero(t, f.left.tests)
}

func TestWrongWeapon(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)
	f.right.touching = true

	f.rig.SeekSong(9)
	f.tick()

	require.Equal(t, game.WrongHit, b.Resolution())
	require.Equal(t, game.CoolingDown, b.State())
	require.Equal(t, []bool{false}, f.effects.correct)
	require.Zero(t, f.pool.Live())
}

func TestNoContactStaysLive(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)

	f.rig.SeekSong(9)
	f.tick()
	f.tick()

	require.Equal(t, 2, f.left.tests)
	require.Equal(t, 2, f.right.tests)
	require.True(t, b.Judgeable())
	require.Equal(t, []*beat.Beat{b}, f.system.Candidates())
}

func TestHazardTestsFirstWeaponFirst(t *testing.T) {
	f := newFixture(playing())
	b := f.spawn(t, game.Hazard, game.Red, 10, game.MidLeft, game.Bottom)
	f.left.touching = true
	f.right.touching = true

	f.rig.SeekSong(9)
	f.tick()

	require.Equal(t, game.HazardHit, b.Resolution())
	require.Equal(t, 1, f.left.tests)
	require.Zero(t, f.right.tests)

	f = newFixture(playing())
	b = f.spawn(t, game.Hazard, game.Red, 10, game.MidLeft, game.Bottom)
	f.right.touching = true

	f.rig.SeekSong(9)
	f.tick()

	require.Equal(t, game.HazardHit, b.Resolution())
	require.Equal(t, 1, f.left.tests)
	require.Equal(t, 1, f.right.tests)
}

func TestOcclusion(t *testing.T) {
	f := newFixture(playing())
	far := f.spawn(t, game.Directional, game.Red, 10.5, game.FarLeft, game.Bottom)
	near := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)
	other := f.spawn(t, game.Directional, game.Blue, 10.5, game.FarRight, game.Bottom)

	f.rig.SeekSong(9.5)
	f.tick()
	require.Equal(t, []*beat.Beat{near, other}, f.system.Candidates())

	f.left.touching = true
	f.tick()
	require.Equal(t, game.Hit, near.Resolution())
	require.True(t, far.Judgeable())

	f.tick()
	require.Equal(t, game.Hit, far.Resolution())
}

func TestAutoHit(t *testing.T) {
	for _, s := range []game.Settings{
		{Mode: game.ModeClassic, IsPlaying: true},
		{Mode: game.ModeClassic, IsPlaying: true, HasImmersiveInput: true, SyncTest: true},
	} {
		f := newFixture(s)
		b := f.spawn(t, game.Directional, game.Blue, 10, game.FarRight, game.Top)
		mine := f.spawn(t, game.Hazard, game.Red, 10, game.FarLeft, game.Top)

		f.rig.SeekSong(9)
		f.tick()

		require.Equal(t, game.Hit, b.Resolution())
		require.True(t, mine.Judgeable())
		require.Equal(t, 1, f.left.tests)
		require.Equal(t, 1, f.right.tests)
		require.Equal(t, 1, f.left.refreshes)
	}
}

func TestSkippedWhenNotJudging(t *testing.T) {
	for _, s := range []game.Settings{
		{Mode: game.ModeRide, IsPlaying: true, HasImmersiveInput: true},
		{Mode: game.ModeClassic, HasImmersiveInput: true},
	} {
		f := newFixture(s)
		b := f.spawn(t, game.Directional, game.Red, 10, game.FarLeft, game.Bottom)
		f.left.touching = true

		f.rig.SeekSong(9)
		f.tick()

		require.True(t, b.Judgeable())
		require.Zero(t, f.left.refreshes)
	}
}

func TestModeSelectsWeapons(t *testing.T) {
	f := newFixture(playing())
	f.system.Update(game.Settings{Mode: game.ModePunch, IsPlaying: true, HasImmersiveInput: true})
	b := f.spawn(t, game.Directional, game.Blue, 10, game.MidRight, game.Middle)
	f.right.touching = true
	f.rfist.touching = true

	f.rig.SeekSong(9.6)
	f.tick()

	require.Equal(t, game.Hit, b.Resolution())
	require.Zero(t, f.right.refreshes)
	require.Equal(t, 1, f.rfist.refreshes)
	require.Equal(t, 1, f.rfist.tests)
}
