package gunner

import (
	"math"
	"testing"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

func TestInterceptStationaryTarget(t *testing.T) {
	target := vector.MakeVector2(40, -17)

	for _, shooterVel := range []vector.Vector2{
		vector.MakeNullVector2(),
		vector.MakeVector2(0, 30),
		vector.MakeVector2(-12, 5),
	} {
		got := InterceptPoint(vector.MakeNullVector2(), shooterVel, target, vector.MakeNullVector2(), 50)
		if !got.Equals(target) {
			t.Fatalf("stationary target: intercept %v, want %v (shooter vel %v)", got, target, shooterVel)
		}
	}
}

func TestInterceptNegativeDiscriminantFallsBack(t *testing.T) {
	// target crossing fast and far: no reachable intercept for a slow round
	target := vector.MakeVector2(0, 100)
	targetVel := vector.MakeVector2(100, 0)

	got := InterceptPoint(vector.MakeNullVector2(), vector.MakeNullVector2(), target, targetVel, 1)

	if math.IsNaN(got.GetX()) || math.IsNaN(got.GetY()) {
		t.Fatal("intercept returned NaN")
	}

	if !got.Equals(target) {
		t.Fatalf("unreachable target: intercept %v, want current position %v", got, target)
	}
}

func TestInterceptLeadsCrossingTarget(t *testing.T) {
	// shooter at origin, target due east drifting north, round at 50
	target := vector.MakeVector2(100, 0)
	targetVel := vector.MakeVector2(0, 10)

	got := InterceptPoint(vector.MakeNullVector2(), vector.MakeNullVector2(), target, targetVel, 50)

	if got.GetY() <= 0 {
		t.Fatalf("intercept y = %v, want strictly positive lead", got.GetY())
	}

	// flight time is near 2s for a ~100m shot at 50; anything past 50m of
	// lead means the solver picked a bogus root
	if got.GetY() >= 50 {
		t.Fatalf("intercept y = %v, unreasonably large lead", got.GetY())
	}

	if got.GetX() != 100 {
		t.Fatalf("intercept x = %v, want 100 (target only drifts north)", got.GetX())
	}
}

func TestInterceptMatchedSpeedsLinearFallback(t *testing.T) {
	// closing speed equals projectile speed: the quadratic term vanishes
	target := vector.MakeVector2(0, 100)
	targetVel := vector.MakeVector2(0, -20)

	got := InterceptPoint(vector.MakeNullVector2(), vector.MakeNullVector2(), target, targetVel, 20)

	// t = -c/b = -10000 / -4000 = 2.5s, so the round meets it at y = 50
	if math.Abs(got.GetY()-50) > 1e-9 {
		t.Fatalf("linear fallback intercept y = %v, want 50", got.GetY())
	}
}
