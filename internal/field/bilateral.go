package field

import (
	"math"

	"orient-smoother/pkg/geometry"
)

// GaussianKernel is a zero-mean Gaussian density with a fixed scale.
type GaussianKernel struct {
	Sigma float64
}

// Weight evaluates the density at x.
func (g GaussianKernel) Weight(x float64) float64 {
	return math.Exp(-0.5*(x/g.Sigma)*(x/g.Sigma)) / (g.Sigma * math.Sqrt(2*math.Pi))
}

// candidate pairs a snapshot cell with its bilateral weight for one
// neighborhood aggregation. The weight lives only as long as the
// aggregation that produced it.
type candidate struct {
	cell   Cell
	weight float64
}

// bilateralWeights assigns each neighbor a spatial x range Gaussian
// weight relative to the center cell.
func bilateralWeights(center Cell, neighbors []Cell, colors [][]BGR, spatial, rng GaussianKernel) []candidate {
	centerPos := geometry.PointInt{X: center.Col, Y: center.Row}
	centerColor := colors[center.Row][center.Col]

	cands := make([]candidate, len(neighbors))
	for i, n := range neighbors {
		spatialDist := centerPos.Distance(geometry.PointInt{X: n.Col, Y: n.Row})
		colorDist := colorDistance(centerColor, colors[n.Row][n.Col])
		cands[i] = candidate{
			cell:   n,
			weight: spatial.Weight(spatialDist) * rng.Weight(colorDist),
		}
	}
	return cands
}

// colorDistance returns the Euclidean distance between two color samples.
func colorDistance(a, b BGR) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
