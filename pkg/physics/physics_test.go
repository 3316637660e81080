package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourVectorDot(t *testing.T) {
	a := NewFourVector(2, 1, 0, 0)
	b := NewFourVector(3, 0, 1, 0)
	assert.Equal(t, 6.0, a.Dot(b))
	assert.Equal(t, 3.0, a.Sqr())
	assert.InDelta(t, math.Sqrt(3), a.Abs(), 1e-12)
}

func TestMomentumFromMassOnShell(t *testing.T) {
	p := MomentumFromMass(0.938, 0.1, 0.2, 0.3)
	assert.InDelta(t, 0.938, p.Abs(), 1e-12)
}

func TestBoostToRestFrame(t *testing.T) {
	p := MomentumFromMass(0.938, 0, 0, 1.5)
	rest := p.Boosted(p.Velocity())
	assert.InDelta(t, 0.938, rest.T, 1e-9)
	assert.InDelta(t, 0.0, rest.Z, 1e-9)
}

func TestBoostInvariantMass(t *testing.T) {
	p := MomentumFromMass(0.5, 0.3, -0.2, 0.9)
	boosted := p.Boosted(ThreeVector{X: 0.4, Y: 0.1, Z: -0.3})
	assert.InDelta(t, p.Abs(), boosted.Abs(), 1e-9)
}

func TestBoostZeroVelocityIsIdentity(t *testing.T) {
	p := NewFourVector(1, 2, 3, 4)
	assert.Equal(t, p, p.Boosted(ThreeVector{}))
}

func TestPCMFromS(t *testing.T) {
	const m = 0.938
	pcm := 0.75
	e := math.Sqrt(m*m + pcm*pcm)
	s := 4 * e * e
	require.InDelta(t, pcm, PCMFromS(s, m, m), 1e-9)

	// Below threshold there is no momentum.
	assert.Equal(t, 0.0, PCMFromS((2*m-0.1)*(2*m-0.1), m, m))
}

func TestSFromPlabAtRestThreshold(t *testing.T) {
	// Zero lab momentum gives s = (ma + mb)^2.
	s := SFromPlab(0, 0.138, 0.938)
	assert.InDelta(t, (0.138+0.938)*(0.138+0.938), s, 1e-12)
}

func TestRelativeVelocityNonRelativisticLimit(t *testing.T) {
	// Two slow equal masses approaching head-on: v_rel -> 2v.
	const m = 0.938
	const p = 0.001
	pa := MomentumFromMass(m, 0, 0, p)
	pb := MomentumFromMass(m, 0, 0, -p)
	v := p / pa.T
	assert.InDelta(t, 2*v, RelativeVelocity(pa, pb), 1e-6)
}

func TestMaxTransverseDistanceSqrScalesWithTestparticles(t *testing.T) {
	one := MaxTransverseDistanceSqr(1)
	ten := MaxTransverseDistanceSqr(10)
	assert.InDelta(t, one/10, ten, 1e-12)
	assert.InDelta(t, MaxCrossSection*Fm2Mb/math.Pi, one, 1e-12)
}
