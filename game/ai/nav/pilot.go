package nav

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

// PilotRequest maps a planner output onto normalized actuator commands.
type PilotRequest struct {
	Kin          ship.Kinematics
	DesiredVel   vector.Vector2
	DesiredAccel vector.Vector2
	FallbackDir  vector.Vector2 // faced when the desired velocity is degenerate
	MaxSpeed     float64
	Tuning       ship.SteeringTuning

	LockRotation     bool
	UseTiltedHeading bool
}

// PilotCommand is thrust/strafe in [-1,1] plus the heading to rotate toward.
type PilotCommand struct {
	Thrust     float64
	Strafe     float64
	HeadingDeg float64
}

const tiltStrafeThreshold = 0.05

// MapToCommand projects the desired acceleration on the ship's axes and
// normalizes each component by the matching thruster authority. Forward and
// reverse limits are distinct on purpose: braking and accelerating authority
// differ per hull.
func MapToCommand(req PilotRequest) PilotCommand {
	forward := req.Kin.Forward()
	right := req.Kin.Right()

	alongNose := req.DesiredAccel.Dot(forward)
	alongRight := req.DesiredAccel.Dot(right)

	var thrust float64
	if alongNose >= 0 {
		thrust = alongNose / req.Tuning.MaxForwardAccel
	} else {
		thrust = alongNose / req.Tuning.MaxReverseAccel
	}

	strafe := alongRight / req.Tuning.MaxStrafeAccel

	if req.DesiredAccel.Mag() < req.Tuning.AccelDeadZone {
		// below the dead-zone nothing moves; prevents jitter at rest
		thrust = 0
		strafe = 0
	} else {
		thrust = number.Clamp(thrust, -1, 1)
		strafe = number.Clamp(strafe, -1, 1)
	}

	return PilotCommand{
		Thrust:     thrust,
		Strafe:     strafe,
		HeadingDeg: computeHeading(req, strafe),
	}
}

func computeHeading(req PilotRequest, strafe float64) float64 {
	if req.LockRotation {
		return req.Kin.HeadingDeg
	}

	dir := req.DesiredVel
	if dir.IsNull() {
		dir = req.FallbackDir
	}
	if dir.IsNull() {
		return req.Kin.HeadingDeg
	}

	heading := trigo.VectorHeading(dir)

	if req.UseTiltedHeading && math.Abs(strafe) >= tiltStrafeThreshold {
		// Tilt the nose off the travel direction so that forward and strafe
		// thrust combine along it. At |strafe|=1 the tilt reaches the full
		// boost angle atan2(strafeLimit, forwardLimit).
		tiltRad := math.Atan2(req.Tuning.MaxStrafeAccel, req.Tuning.MaxForwardAccel) * math.Abs(strafe)
		if strafe > 0 {
			heading -= trigo.RadToDeg(tiltRad)
		} else {
			heading += trigo.RadToDeg(tiltRad)
		}
	}

	return trigo.NormalizeDeg(heading)
}
