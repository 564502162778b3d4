package ship

// Command is the actuation order produced by the AI core once per tick and
// consumed exactly once by the host's movement/weapon systems. The core never
// reads it back.
type Command struct {
	Thrust float64 // [-1, 1] along the nose; negative means braking/reversing
	Strafe float64 // [-1, 1]; positive is to the right of the nose
	Boost  bool

	RotateToHeading  bool // when false, hold current heading
	TargetHeadingDeg float64
	YawTorque        float64 // raw torque override; 0 unless a behavior forces it

	FirePrimary   bool
	FireSecondary bool
}

// MakeNeutralCommand is the defined output when nothing is to be done:
// no thrust, no strafe, hold heading, hold fire.
func MakeNeutralCommand() Command {
	return Command{}
}
