package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func Clamp(f float64, min float64, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}

func Clamp01(f float64) float64 {
	return Clamp(f, 0, 1)
}

func Map(value float64, fromlow float64, fromhigh float64, tolow float64, tohigh float64) float64 {
	return (value-fromlow)*(tohigh-tolow)/(fromhigh-fromlow) + tolow
}
