package ship

import (
	"github.com/amindell11/astronomical-home-sub002/common/utils/trigo"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

// Kinematics is the per-tick motion snapshot of a ship in the arena plane.
// It is a value type: built once per tick by the host and copied into every
// pure function that needs it, never mutated.
type Kinematics struct {
	Pos           vector.Vector2
	Vel           vector.Vector2
	HeadingDeg    float64 // [0, 360); 0 points "north" (+Y), clockwise positive
	AngularVelDeg float64 // deg/sec
	BankDeg       float64
}

func MakeKinematics(pos vector.Vector2, vel vector.Vector2, headingDeg float64) Kinematics {
	return Kinematics{
		Pos:        pos,
		Vel:        vel,
		HeadingDeg: trigo.NormalizeDeg(headingDeg),
	}
}

func (k Kinematics) Speed() float64 {
	return k.Vel.Mag()
}

// Forward is the unit vector along the ship's nose
func (k Kinematics) Forward() vector.Vector2 {
	return trigo.HeadingVector(k.HeadingDeg)
}

// Right is the unit vector 90° clockwise of the nose
func (k Kinematics) Right() vector.Vector2 {
	return k.Forward().OrthogonalClockwise()
}

// ForwardSpeed is the velocity component along the nose; negative when reversing
func (k Kinematics) ForwardSpeed() float64 {
	return k.Vel.Dot(k.Forward())
}
