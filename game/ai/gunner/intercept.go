package gunner

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/number"
	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

// InterceptPoint predicts where a projectile of the given speed, fired now,
// meets the target. Shooter velocity must already be reduced to its
// forward-axis component; lateral drift does not carry into the shot.
//
// Solves |targetPos + targetVel*t - (shooterPos + shooterVel*t)| = projSpeed*t
// as a*t² + b*t + c = 0 with a = |relVel|² - projSpeed². Degenerate cases
// fall back to the linear solution, then to t=0 (aim at the current
// position); the function never returns NaN.
func InterceptPoint(
	shooterPos vector.Vector2,
	shooterVel vector.Vector2,
	targetPos vector.Vector2,
	targetVel vector.Vector2,
	projSpeed float64,
) vector.Vector2 {
	relPos := targetPos.Sub(shooterPos)
	relVel := targetVel.Sub(shooterVel)

	a := relVel.MagSq() - projSpeed*projSpeed
	b := 2 * relPos.Dot(relVel)
	c := relPos.MagSq()

	t := solveInterceptTime(a, b, c)

	return targetPos.Add(targetVel.MultScalar(t))
}

func solveInterceptTime(a float64, b float64, c float64) float64 {
	if number.IsZero(a) {
		// projectile speed ≈ closing speed; quadratic degrades to linear
		if number.IsZero(b) {
			return 0
		}

		return math.Max(-c/b, 0)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// smallest strictly-positive root wins
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}

	return 0
}
