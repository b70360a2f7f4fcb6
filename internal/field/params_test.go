package field

import "testing"

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.KernelSize != 7 || p.SpatialSigma != 2.0 || p.RangeSigma != 10.0 || p.MagnitudePhaseIters != 20 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestParamsBuilders(t *testing.T) {
	base := DefaultParams()
	p := base.WithKernelSize(3).WithSigmas(1.5, 8).WithMagnitudePhase(0).WithWorkers(2)

	if p.KernelSize != 3 || p.SpatialSigma != 1.5 || p.RangeSigma != 8 || p.MagnitudePhaseIters != 0 || p.Workers != 2 {
		t.Errorf("unexpected params: %+v", p)
	}
	if base.KernelSize != 7 {
		t.Error("builders must not mutate the receiver")
	}

	// Invalid values keep the previous setting.
	q := base.WithKernelSize(0).WithSigmas(-1, 0).WithMagnitudePhase(-1)
	if q != base {
		t.Errorf("invalid values changed params: %+v", q)
	}
}
