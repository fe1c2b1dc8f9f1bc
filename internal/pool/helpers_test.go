package pool

import (
	"time"

	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/weapon"
)

type nopWeapon struct{}

func (nopWeapon) Kind() weapon.Kind                                     { return weapon.KindBlade }
func (nopWeapon) Hand() game.Hand                                       { return game.LeftHand }
func (nopWeapon) Refresh(_, _ time.Duration)                            {}
func (nopWeapon) Overlaps(game.Box) bool                                { return false }
func (nopWeapon) Judge(game.BeatType, game.CutDirection) weapon.Verdict { return weapon.Verdict{} }
func (nopWeapon) Direction() game.Vec3                                  { return game.Vec3{} }
