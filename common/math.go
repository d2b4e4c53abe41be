package common

import "math"

// Vec3 is a three-component gravity/velocity vector. The play field lies in
// the X-Z plane: X is the in-plane pull axis toward the lower goal, Z is the
// in-plane sideways axis, Y is out-of-plane and stays zero for well-formed
// data.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Zero reports whether all components are exactly zero.
func (v Vec3) Zero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Finite reports whether no component is NaN or Inf.
func (v Vec3) Finite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// InRange reports whether every component lies within [lo, hi].
func (v Vec3) InRange(lo, hi float64) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if c < lo || c > hi {
			return false
		}
	}
	return true
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// EaseOutCubic maps a linear progress fraction to a decelerating curve.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
