package field

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Smoother runs generation-based smoothing passes over a field. Each
// iteration reads only the frozen previous generation plus the static
// color sample, so identical inputs always produce identical output
// regardless of worker count.
type Smoother struct {
	params  Params
	colors  [][]BGR
	field   *Field
	spatial GaussianKernel
	rng     GaussianKernel
}

// NewSmoother wires a field and its color sample to a parameter set.
// The color sample must match the field dimensions; it is read-only
// for the lifetime of the smoother.
func NewSmoother(f *Field, colors [][]BGR, params Params) (*Smoother, error) {
	if f.Rows() == 0 || f.Cols() == 0 {
		return nil, ErrEmptyField
	}
	if len(colors) != f.Rows() {
		return nil, ErrDimensionMismatch
	}
	for _, row := range colors {
		if len(row) != f.Cols() {
			return nil, ErrDimensionMismatch
		}
	}
	return &Smoother{
		params:  params,
		colors:  colors,
		field:   f,
		spatial: GaussianKernel{Sigma: params.SpatialSigma},
		rng:     GaussianKernel{Sigma: params.RangeSigma},
	}, nil
}

// Field returns the current generation.
func (s *Smoother) Field() *Field { return s.field }

// Run executes n iterations. The first MagnitudePhaseIters iterations
// keep the magnitude-dominance filter on so strong-edge orientation
// propagates outward first; the rest smooth over all same-cluster
// window members. checkpoint, when non-nil, is called after every
// iteration with the 1-based iteration number and the new generation;
// a non-nil return aborts the run. Cancellation is checked between
// iterations only.
func (s *Smoother) Run(ctx context.Context, n int, checkpoint func(iter int, f *Field) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ignoreMagnitude := i >= s.params.MagnitudePhaseIters
		if err := s.iterate(ignoreMagnitude); err != nil {
			return fmt.Errorf("iteration %d: %w", i+1, err)
		}
		if checkpoint != nil {
			if err := checkpoint(i+1, s.field); err != nil {
				return err
			}
		}
	}
	return nil
}

// iterate computes one full generation from the frozen current field
// and swaps it in. Rows are distributed over a worker pool; every
// worker writes a disjoint set of output rows, so no locking is needed.
func (s *Smoother) iterate(ignoreMagnitude bool) error {
	snapshot := s.field
	next := snapshot.clone()
	rows := snapshot.Rows()

	numWorkers := s.params.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rows {
		numWorkers = rows
	}

	var wg sync.WaitGroup
	rowChan := make(chan int, rows)
	rowErrs := make([]error, rows)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range rowChan {
				rowErrs[r] = s.updateRow(r, snapshot, next, ignoreMagnitude)
			}
		}()
	}
	for r := 0; r < rows; r++ {
		rowChan <- r
	}
	close(rowChan)
	wg.Wait()

	for _, err := range rowErrs {
		if err != nil {
			return err
		}
	}

	s.field = next
	return nil
}

// updateRow recomputes one output row from the snapshot.
func (s *Smoother) updateRow(r int, snapshot, next *Field, ignoreMagnitude bool) error {
	for c := 0; c < snapshot.Cols(); c++ {
		neighbors := snapshot.qualifiedNeighbors(r, c, s.params.KernelSize, ignoreMagnitude)
		// A cell alone in its window keeps its value; averaging a
		// single sample would only normalize it against itself.
		if len(neighbors) == 1 {
			continue
		}

		cands := bilateralWeights(snapshot.cells[r][c], neighbors, s.colors, s.spatial, s.rng)

		magnitude, err := interpolateMagnitude(cands)
		if err != nil {
			return fmt.Errorf("cell (%d, %d): %w", r, c, err)
		}
		angle, err := interpolateAngle(cands)
		if err != nil {
			return fmt.Errorf("cell (%d, %d): %w", r, c, err)
		}

		next.cells[r][c].Magnitude = magnitude
		next.cells[r][c].Angle = angle
	}
	return nil
}
