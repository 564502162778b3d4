package nav

import (
	"math"
	"testing"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
	"github.com/amindell11/astronomical-home-sub002/game/ship"
)

func TestDeadZoneZeroesCommands(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)

	cmd := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   vector.MakeNullVector2(),
		DesiredAccel: vector.MakeVector2(0.01, 0.01),
		MaxSpeed:     40,
		Tuning:       tuning,
	})

	if cmd.Thrust != 0 || cmd.Strafe != 0 {
		t.Fatalf("thrust=%v strafe=%v below dead-zone, want exactly 0", cmd.Thrust, cmd.Strafe)
	}
}

func TestForwardAccelAtLimitClampsToOne(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)

	// nose points north; push straight along it at the forward limit
	accel := kin.Forward().MultScalar(tuning.MaxForwardAccel)

	cmd := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   accel,
		DesiredAccel: accel,
		MaxSpeed:     40,
		Tuning:       tuning,
	})

	if cmd.Thrust != 1.0 {
		t.Fatalf("thrust = %v, want exactly 1.0", cmd.Thrust)
	}

	if math.Abs(cmd.Strafe) > 1e-12 {
		t.Fatalf("strafe = %v, want 0", cmd.Strafe)
	}
}

func TestReverseUsesReverseLimit(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)

	// braking at exactly the reverse limit saturates at -1; the same
	// magnitude against the forward limit would not
	accel := kin.Forward().MultScalar(-tuning.MaxReverseAccel)

	cmd := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   vector.MakeNullVector2(),
		DesiredAccel: accel,
		FallbackDir:  kin.Forward(),
		MaxSpeed:     40,
		Tuning:       tuning,
	})

	if cmd.Thrust != -1.0 {
		t.Fatalf("thrust = %v, want exactly -1.0", cmd.Thrust)
	}
}

func TestLockRotationHoldsHeading(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 123)

	cmd := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   vector.MakeVector2(10, 0),
		DesiredAccel: vector.MakeVector2(10, 0),
		MaxSpeed:     40,
		Tuning:       tuning,
		LockRotation: true,
	})

	if cmd.HeadingDeg != 123 {
		t.Fatalf("heading = %v with locked rotation, want 123", cmd.HeadingDeg)
	}
}

func TestTiltedHeadingOffsetsByTiltAngle(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0)

	// full strafe to the right of the nose
	accel := kin.Right().MultScalar(tuning.MaxStrafeAccel)
	desiredVel := vector.MakeVector2(10, 0) // due east, heading 90

	plain := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   desiredVel,
		DesiredAccel: accel,
		MaxSpeed:     40,
		Tuning:       tuning,
	})

	tilted := MapToCommand(PilotRequest{
		Kin:              kin,
		DesiredVel:       desiredVel,
		DesiredAccel:     accel,
		MaxSpeed:         40,
		Tuning:           tuning,
		UseTiltedHeading: true,
	})

	if plain.HeadingDeg != 90 {
		t.Fatalf("plain heading = %v, want 90", plain.HeadingDeg)
	}

	wantTilt := math.Atan2(tuning.MaxStrafeAccel, tuning.MaxForwardAccel) * 180 / math.Pi
	got := plain.HeadingDeg - tilted.HeadingDeg
	if math.Abs(got-wantTilt) > 1e-9 {
		t.Fatalf("tilt offset = %v, want %v", got, wantTilt)
	}
}

func TestDegenerateDesiredVelocityFallsBack(t *testing.T) {
	tuning := testTuning()
	kin := ship.MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 45)

	cmd := MapToCommand(PilotRequest{
		Kin:          kin,
		DesiredVel:   vector.MakeNullVector2(),
		DesiredAccel: vector.MakeNullVector2(),
		FallbackDir:  vector.MakeVector2(10, 0),
		MaxSpeed:     40,
		Tuning:       tuning,
	})

	if cmd.HeadingDeg != 90 {
		t.Fatalf("heading = %v, want the fallback direction 90", cmd.HeadingDeg)
	}
}
