package trigo

import (
	"math"

	"github.com/amindell11/astronomical-home-sub002/common/utils/vector"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeDeg maps any angle to [0, 360)
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// SignedDeltaDeg is the shortest signed rotation from one heading to another, in (-180, 180]
func SignedDeltaDeg(fromDeg float64, toDeg float64) float64 {
	delta := math.Mod(toDeg-fromDeg, 360)

	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}

	return delta
}

// HeadingVector builds the unit vector pointing along a heading;
// 0° points "north" (+Y), angles grow clockwise
func HeadingVector(deg float64) vector.Vector2 {
	rad := DegToRad(deg)
	return vector.MakeVector2(math.Sin(rad), math.Cos(rad))
}

// VectorHeading is the heading in degrees [0, 360) of a vector; null vector yields 0
func VectorHeading(v vector.Vector2) float64 {
	return NormalizeDeg(RadToDeg(v.Angle()))
}

// ClosestPointOnSegment projects p onto the segment [a, b]
func ClosestPointOnSegment(p vector.Vector2, a vector.Vector2, b vector.Vector2) vector.Vector2 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return a
	}

	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return a.Add(ab.MultScalar(t))
}
