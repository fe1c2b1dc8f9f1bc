// Package path maps song positions onto the track the player rides along.
package path

import "git.lost.host/meutraa/saber/internal/game"

// Curve is the track. Song positions and follower progress are both scalars
// along it; progress is in [0, 1].
type Curve interface {
	PointAt(songPosition float64) game.Vec3
	// Align sets the rotation a target at songPosition should face with.
	Align(songPosition float64, pose *game.Pose)
	ProgressToSongPosition(progress float64) float64
	Length() float64
}

// Follower is the rig riding the curve with the player.
type Follower interface {
	Progress() float64
	Position() game.Vec3
	// WorldToLocal expresses a world point relative to the rig.
	WorldToLocal(p game.Vec3) game.Vec3
}

// ReachOffset converts a weapon reach in world units into song-position
// units so targets become hittable that far before the rig reaches them.
func ReachOffset(c Curve, reach float64) float64 {
	l := c.Length()
	if l <= 0 {
		return 0
	}
	return c.ProgressToSongPosition(reach/l) - c.ProgressToSongPosition(0)
}
