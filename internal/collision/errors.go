package collision

import "errors"

// Fatal configuration errors. Both abort the run: the timestep driver
// never retries with a smaller timestep automatically.
var (
	// ErrProbabilityAboveOne signals an acceptance probability above 1
	// under a stochastic rate; the timestep is too coarse.
	ErrProbabilityAboveOne = errors.New("collision probability larger than 1, use smaller timesteps")

	// ErrTestparticlesUnsupported signals a multi-body evaluation with
	// a testparticle multiplier other than 1; multi-body rates do not
	// scale with oversampled ensembles.
	ErrTestparticlesUnsupported = errors.New("multi-body reactions do not scale with testparticles, use 1")
)
