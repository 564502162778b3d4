package ship

import (
	bettererrors "github.com/xtuc/better-errors"
)

// EngineSpec describes the raw thruster authority of a hull, in newtons.
type EngineSpec struct {
	ForwardThrust float64
	ReverseThrust float64
	StrafeThrust  float64
}

// SteeringTuning is the per-ship acceleration envelope shared by the path
// planner and the pilot. Derived once from mass and engine at construction,
// immutable afterwards.
type SteeringTuning struct {
	MaxForwardAccel float64 // m/s²
	MaxReverseAccel float64 // m/s²; braking authority, usually ≠ forward
	MaxStrafeAccel  float64 // m/s²
	AccelDeadZone   float64 // m/s²; desired accelerations below this are dropped
}

const deadZoneFraction = 0.02

func DeriveSteeringTuning(mass float64, engine EngineSpec) (SteeringTuning, error) {
	if mass <= 0 {
		return SteeringTuning{}, bettererrors.
			New("Invalid steering tuning").
			SetContext("mass", "must be strictly positive")
	}

	if engine.ForwardThrust <= 0 || engine.ReverseThrust <= 0 || engine.StrafeThrust <= 0 {
		return SteeringTuning{}, bettererrors.
			New("Invalid steering tuning").
			SetContext("engine", "all thrust components must be strictly positive")
	}

	forward := engine.ForwardThrust / mass

	return SteeringTuning{
		MaxForwardAccel: forward,
		MaxReverseAccel: engine.ReverseThrust / mass,
		MaxStrafeAccel:  engine.StrafeThrust / mass,
		AccelDeadZone:   forward * deadZoneFraction,
	}, nil
}
