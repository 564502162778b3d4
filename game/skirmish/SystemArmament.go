package skirmish

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// systemArmament cools guns, advances seeker locks, and turns this tick's
// fire intents into projectile entities.
func systemArmament(game *SkirmishGame, dt float64) {
	spec := game.cfg.Ship

	for _, entityresult := range game.brainsView.Get() {
		brainAspect := game.CastBrain(entityresult.Components[game.brainComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		armamentAspect := game.CastArmament(entityresult.Components[game.armamentComponent])

		armamentAspect.Cool(dt)

		ctx := brainAspect.GetContext()

		coneHold := ctx.HasEnemy() &&
			ctx.HasLOS &&
			math.Abs(ctx.EnemyBearingDeg) <= armamentAspect.GetLockConeDeg()
		armamentAspect.StepLock(coneHold, dt)

		cmd := brainAspect.GetCommand()
		kin := physicalAspect.Kinematics()
		forward := kin.Forward()
		muzzle := kin.Pos.Add(forward.MultScalar(physicalAspect.GetRadius() + spec.ProjectileRadius*2))

		if cmd.FirePrimary && armamentAspect.CanFirePrimary(game.ticknum) {
			armamentAspect.FirePrimary(game.ticknum)

			// the round inherits the forward velocity component, matching
			// what the gunner's intercept solution assumed
			pvel := forward.MultScalar(spec.ProjectileSpeed + kin.ForwardSpeed())
			game.NewEntityShell(entityresult.Entity.GetID(), muzzle, pvel)
		}

		if cmd.FireSecondary && armamentAspect.CanFireMissile() {
			targetID := brainAspect.GetEnemyID()
			if armamentAspect.GetLockState() != ship.LockLocked {
				// dumb-fired rounds fly out straight
				targetID = 0
			}

			armamentAspect.FireMissile()

			mvel := forward.MultScalar(spec.MissileSpeed)
			game.NewEntityMissile(entityresult.Entity.GetID(), targetID, muzzle, mvel)
		}
	}
}
