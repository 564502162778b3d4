package skirmish

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
)

const boostFactor = 1.5

// systemSteering turns each brain's command into body motion: a rate-limited
// rotation toward the commanded heading, then thrust and strafe accelerations
// in the ship frame, capped at the hull's top speed.
func systemSteering(game *SkirmishGame, dt float64) {
	for _, entityresult := range game.brainsView.Get() {
		brainAspect := game.CastBrain(entityresult.Components[game.brainComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		cmd := brainAspect.GetCommand()
		tuning := brainAspect.GetTuning()

		heading := physicalAspect.GetHeadingDeg()

		if cmd.RotateToHeading {
			delta := trigo.SignedDeltaDeg(heading, cmd.TargetHeadingDeg)
			maxStep := physicalAspect.GetMaxTurnRateDeg() * dt
			if math.Abs(delta) > maxStep {
				delta = math.Copysign(maxStep, delta)
			}
			heading = trigo.NormalizeDeg(heading + delta)
			physicalAspect.SetHeadingDeg(heading)
		}

		forward := trigo.HeadingVector(heading)
		right := forward.OrthogonalClockwise()

		thrust := number.Clamp(cmd.Thrust, -1, 1)
		strafe := number.Clamp(cmd.Strafe, -1, 1)

		forwardAccel := thrust * tuning.MaxForwardAccel
		if thrust < 0 {
			forwardAccel = thrust * tuning.MaxReverseAccel
		}
		if cmd.Boost && thrust > 0 {
			forwardAccel *= boostFactor
		}

		accel := forward.MultScalar(forwardAccel).Add(right.MultScalar(strafe * tuning.MaxStrafeAccel))

		velocity := physicalAspect.GetVelocity().
			Add(accel.MultScalar(dt)).
			Limit(physicalAspect.GetMaxSpeed())

		physicalAspect.SetVelocity(velocity)
	}
}
