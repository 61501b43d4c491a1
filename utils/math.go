// Package utils holds small numeric helpers shared across the module.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffRad returns the closest difference between two angles in
// radians, ignoring winding. The arguments are commutative.
func AngleDiffRad(a1, a2 float64) float64 {
	return math.Pi - math.Abs(math.Abs(a1-a2)-math.Pi)
}
