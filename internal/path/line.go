package path

import "git.lost.host/meutraa/saber/internal/game"

var (
	_ Curve    = (*Line)(nil)
	_ Follower = (*Rig)(nil)
)

// Line runs straight down -Z from Origin. One song position unit covers
// Speed world units and the song lasts Duration units.
type Line struct {
	Origin   game.Vec3
	Speed    float64
	Duration float64
}

func (l *Line) PointAt(songPosition float64) game.Vec3 {
	return l.Origin.Add(game.Vec3{Z: -songPosition * l.Speed})
}

func (l *Line) Align(_ float64, pose *game.Pose) {
	pose.Rotation = game.Euler{}
}

func (l *Line) ProgressToSongPosition(progress float64) float64 {
	return progress * l.Duration
}

func (l *Line) Length() float64 {
	return l.Speed * l.Duration
}

// Rig follows a curve. The driver moves it by song position each frame.
type Rig struct {
	Curve    Curve
	progress float64
}

func NewRig(c Curve) *Rig {
	return &Rig{Curve: c}
}

// SetProgress clamps p into [0, 1].
func (r *Rig) SetProgress(p float64) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	r.progress = p
}

// SeekSong moves the rig to the given song position.
func (r *Rig) SeekSong(songPosition float64) {
	end := r.Curve.ProgressToSongPosition(1)
	if end <= 0 {
		r.SetProgress(0)
		return
	}
	r.SetProgress(songPosition / end)
}

func (r *Rig) Progress() float64 { return r.progress }

func (r *Rig) SongPosition() float64 {
	return r.Curve.ProgressToSongPosition(r.progress)
}

func (r *Rig) Position() game.Vec3 {
	return r.Curve.PointAt(r.SongPosition())
}

func (r *Rig) WorldToLocal(p game.Vec3) game.Vec3 {
	return p.Sub(r.Position())
}
