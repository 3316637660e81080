package physics

import "math"

// ThreeVector is a spatial vector (x, y, z).
type ThreeVector struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v ThreeVector) Add(w ThreeVector) ThreeVector {
	return ThreeVector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v ThreeVector) Sub(w ThreeVector) ThreeVector {
	return ThreeVector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns a*v.
func (v ThreeVector) Scale(a float64) ThreeVector {
	return ThreeVector{a * v.X, a * v.Y, a * v.Z}
}

// Dot returns the euclidean scalar product v·w.
func (v ThreeVector) Dot(w ThreeVector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Sqr returns |v|^2.
func (v ThreeVector) Sqr() float64 {
	return v.Dot(v)
}

// Abs returns |v|.
func (v ThreeVector) Abs() float64 {
	return math.Sqrt(v.Sqr())
}
