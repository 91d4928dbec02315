package header

import "math"

// Easing maps linear time in [0,1] to curve progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and arrives slowly.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// AccelerateDecelerate is the symmetric cosine ease-in-out.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseOutCubic is a steeper decelerating curve used for layout blends.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
