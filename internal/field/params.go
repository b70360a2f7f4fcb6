package field

// Params configures a smoothing run.
type Params struct {
	KernelSize          int     // square window size, odd
	SpatialSigma        float64 // spatial Gaussian scale in pixels
	RangeSigma          float64 // color Gaussian scale in intensity units
	MagnitudePhaseIters int     // iterations with the magnitude-dominance filter on
	Workers             int     // worker goroutines per iteration, 0 means all CPUs
}

// DefaultParams returns the default smoothing parameters.
func DefaultParams() Params {
	return Params{
		KernelSize:          7,
		SpatialSigma:        2.0,
		RangeSigma:          10.0,
		MagnitudePhaseIters: 20,
		Workers:             0,
	}
}

// WithKernelSize returns a copy of params with the given window size.
// Non-positive sizes fall back to the default.
func (p Params) WithKernelSize(k int) Params {
	if k > 0 {
		p.KernelSize = k
	}
	return p
}

// WithSigmas returns a copy of params with custom Gaussian scales.
func (p Params) WithSigmas(spatial, rng float64) Params {
	if spatial > 0 {
		p.SpatialSigma = spatial
	}
	if rng > 0 {
		p.RangeSigma = rng
	}
	return p
}

// WithMagnitudePhase returns a copy of params with the given number of
// initial iterations that keep the magnitude-dominance filter on.
func (p Params) WithMagnitudePhase(n int) Params {
	if n >= 0 {
		p.MagnitudePhaseIters = n
	}
	return p
}

// WithWorkers returns a copy of params with the given worker count.
func (p Params) WithWorkers(n int) Params {
	if n >= 0 {
		p.Workers = n
	}
	return p
}
