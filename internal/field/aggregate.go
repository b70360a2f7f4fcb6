package field

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// interpolateMagnitude returns the bilateral-weighted mean of the
// candidate magnitudes.
func interpolateMagnitude(cands []candidate) (float64, error) {
	mags := make([]float64, len(cands))
	weights := make([]float64, len(cands))
	for i, cd := range cands {
		mags[i] = cd.cell.Magnitude
		weights[i] = cd.weight
	}
	if floats.Sum(weights) <= 0 {
		return 0, ErrDegenerateWeight
	}
	return stat.Mean(mags, weights), nil
}

// interpolateAngle returns the weighted circular mean of the candidate
// angles under period pi. Orientations are undirected, so angles near
// -pi/2 and +pi/2 describe nearly the same direction; a naive
// arithmetic mean would pull them toward 0. The candidates are sorted
// by angle, the widest gap on the period-pi circle is chosen as the
// branch cut, every angle before the cut is unwrapped by +pi, and the
// weighted mean of the unwrapped angles is folded back into
// (-pi/2, pi/2]. The combination weight is bilateral weight times
// magnitude, so stronger gradients dominate.
func interpolateAngle(cands []candidate) (float64, error) {
	sorted := make([]candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].cell.Angle < sorted[j].cell.Angle
	})

	// The wrap gap spans from the last angle around to the first.
	// Minimizing pi minus the gap maximizes the gap itself; strict
	// comparison keeps the first occurrence on ties.
	cut := 0
	narrowest := sorted[len(sorted)-1].cell.Angle - sorted[0].cell.Angle
	for i := 1; i < len(sorted); i++ {
		closing := sorted[i-1].cell.Angle + math.Pi - sorted[i].cell.Angle
		if closing < narrowest {
			narrowest = closing
			cut = i
		}
	}

	angles := make([]float64, len(sorted))
	weights := make([]float64, len(sorted))
	for i, cd := range sorted {
		a := cd.cell.Angle
		if i < cut {
			a += math.Pi
		}
		angles[i] = a
		weights[i] = cd.weight * cd.cell.Magnitude
	}
	if floats.Sum(weights) <= 0 {
		return 0, ErrDegenerateWeight
	}

	mean := stat.Mean(angles, weights)
	if mean >= math.Pi/2 {
		mean -= math.Pi
	}
	return mean, nil
}
