package physics

import "math"

// FourVector is a Minkowski four-vector (t, x, y, z) with metric
// signature (+, -, -, -). For momenta the components are (E, px, py, pz).
type FourVector struct {
	T, X, Y, Z float64
}

// NewFourVector constructs a four-vector from its components.
func NewFourVector(t, x, y, z float64) FourVector {
	return FourVector{T: t, X: x, Y: y, Z: z}
}

// MomentumFromMass builds an on-shell four-momentum for the given rest
// mass and spatial momentum components.
func MomentumFromMass(mass, px, py, pz float64) FourVector {
	e := math.Sqrt(mass*mass + px*px + py*py + pz*pz)
	return FourVector{T: e, X: px, Y: py, Z: pz}
}

// Add returns a + b.
func (a FourVector) Add(b FourVector) FourVector {
	return FourVector{a.T + b.T, a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a FourVector) Sub(b FourVector) FourVector {
	return FourVector{a.T - b.T, a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns s*a.
func (a FourVector) Scale(s float64) FourVector {
	return FourVector{s * a.T, s * a.X, s * a.Y, s * a.Z}
}

// Dot returns the Minkowski scalar product a·b = a.T*b.T - a⃗·b⃗.
func (a FourVector) Dot(b FourVector) float64 {
	return a.T*b.T - a.X*b.X - a.Y*b.Y - a.Z*b.Z
}

// Sqr returns the Minkowski square a·a.
func (a FourVector) Sqr() float64 {
	return a.Dot(a)
}

// Abs returns sqrt(a·a) for timelike vectors; 0 for spacelike ones
// within numerical noise.
func (a FourVector) Abs() float64 {
	s := a.Sqr()
	if s <= 0 {
		return 0
	}
	return math.Sqrt(s)
}

// Spatial returns the spatial part of the four-vector.
func (a FourVector) Spatial() ThreeVector {
	return ThreeVector{a.X, a.Y, a.Z}
}

// Velocity returns p⃗/E for a four-momentum.
func (a FourVector) Velocity() ThreeVector {
	return a.Spatial().Scale(1.0 / a.T)
}

// Boosted returns the four-vector boosted by velocity beta.
func (a FourVector) Boosted(beta ThreeVector) FourVector {
	b2 := beta.Sqr()
	if b2 < ReallySmall*ReallySmall {
		return a
	}
	gamma := 1.0 / math.Sqrt(1.0-b2)
	bp := beta.Dot(a.Spatial())
	t := gamma * (a.T - bp)
	spatial := a.Spatial().Add(beta.Scale(gamma * gamma / (gamma + 1.0) * bp)).Sub(beta.Scale(gamma * a.T))
	return FourVector{T: t, X: spatial.X, Y: spatial.Y, Z: spatial.Z}
}
