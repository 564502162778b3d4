package ship

import (
	"math"
	"testing"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

func TestSanitizeClampsFractions(t *testing.T) {
	ctx := Context{
		Health:      1.7,
		Shield:      -0.3,
		WeaponHeat:  2,
		MissileAmmo: -4,
	}.Sanitize()

	if ctx.Health != 1 || ctx.Shield != 0 || ctx.WeaponHeat != 1 || ctx.MissileAmmo != 0 {
		t.Fatalf("sanitized = %+v", ctx)
	}
}

func TestSanitizeNeutralizesEnemyFieldsWithoutEnemy(t *testing.T) {
	ctx := Context{
		EnemyVector:     vector.MakeVector2(3, 4),
		EnemyDistance:   5,
		EnemyBearingDeg: 42,
		HasLOS:          true,
		ClosingSpeed:    9,
	}.Sanitize()

	if !ctx.EnemyVector.IsNull() || ctx.EnemyDistance != 0 || ctx.EnemyBearingDeg != 0 || ctx.HasLOS || ctx.ClosingSpeed != 0 {
		t.Fatalf("enemy fields not neutral: %+v", ctx)
	}

	if ctx.NormalizedEnemyDistance() != 1 {
		t.Fatalf("normalized distance without enemy = %v, want 1", ctx.NormalizedEnemyDistance())
	}
}

func TestDeriveEnemyFields(t *testing.T) {
	ctx := Context{
		Self: MakeKinematics(vector.MakeNullVector2(), vector.MakeNullVector2(), 0),
		Enemy: &EnemyInfo{
			// dead east, flying straight at us
			Kin:    MakeKinematics(vector.MakeVector2(30, 0), vector.MakeVector2(-10, 0), 270),
			Health: 1,
			Shield: 1,
			Armed:  true,
		},
		EngagementRange: 100,
	}.DeriveEnemyFields()

	if math.Abs(ctx.EnemyDistance-30) > 1e-9 {
		t.Fatalf("distance = %v", ctx.EnemyDistance)
	}

	if math.Abs(ctx.EnemyBearingDeg-90) > 1e-9 {
		t.Fatalf("bearing = %v, want 90", ctx.EnemyBearingDeg)
	}

	// gap shrinking at 10 m/s reads as positive closing speed
	if math.Abs(ctx.ClosingSpeed-10) > 1e-9 {
		t.Fatalf("closing speed = %v, want 10", ctx.ClosingSpeed)
	}

	if math.Abs(ctx.NormalizedEnemyDistance()-0.3) > 1e-9 {
		t.Fatalf("normalized distance = %v", ctx.NormalizedEnemyDistance())
	}
}

func TestOutnumbered(t *testing.T) {
	ctx := Context{NearbyEnemies: 2, NearbyFriends: 0}
	if ctx.Outnumbered() != true {
		t.Fatal("2v1 should read as outnumbered")
	}

	ctx = Context{NearbyEnemies: 1, NearbyFriends: 0}
	if ctx.Outnumbered() {
		t.Fatal("a lone duel is not outnumbered")
	}
}

func TestKinematicsFrame(t *testing.T) {
	kin := MakeKinematics(vector.MakeNullVector2(), vector.MakeVector2(0, 5), 0)

	fwd := kin.Forward()
	if math.Abs(fwd.GetX()) > 1e-9 || math.Abs(fwd.GetY()-1) > 1e-9 {
		t.Fatalf("north forward = %v", fwd)
	}

	right := kin.Right()
	if math.Abs(right.GetX()-1) > 1e-9 || math.Abs(right.GetY()) > 1e-9 {
		t.Fatalf("north right = %v", right)
	}

	if math.Abs(kin.ForwardSpeed()-5) > 1e-9 {
		t.Fatalf("forward speed = %v", kin.ForwardSpeed())
	}
}

func TestDeriveSteeringTuning(t *testing.T) {
	tuning, err := DeriveSteeringTuning(2, EngineSpec{
		ForwardThrust: 30,
		ReverseThrust: 18,
		StrafeThrust:  12,
	})
	if err != nil {
		t.Fatal(err)
	}

	if tuning.MaxForwardAccel != 15 || tuning.MaxReverseAccel != 9 || tuning.MaxStrafeAccel != 6 {
		t.Fatalf("tuning = %+v", tuning)
	}

	if tuning.AccelDeadZone <= 0 {
		t.Fatal("dead zone must be positive")
	}

	if _, err := DeriveSteeringTuning(0, EngineSpec{ForwardThrust: 1, ReverseThrust: 1, StrafeThrust: 1}); err == nil {
		t.Fatal("zero mass accepted")
	}

	if _, err := DeriveSteeringTuning(1, EngineSpec{ForwardThrust: 1, ReverseThrust: 0, StrafeThrust: 1}); err == nil {
		t.Fatal("dead reverse thruster accepted")
	}
}
