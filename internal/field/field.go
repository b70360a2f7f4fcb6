// Package field implements cluster-constrained bilateral smoothing of a
// per-pixel orientation and magnitude field derived from image gradients.
package field

import (
	"errors"
	"math"
)

// Errors reported during construction and iteration.
var (
	// ErrEmptyField reports a field with zero rows or columns.
	ErrEmptyField = errors.New("field: zero rows or columns")
	// ErrDimensionMismatch reports input grids of disagreeing dimensions.
	ErrDimensionMismatch = errors.New("field: input dimensions disagree")
	// ErrDegenerateWeight reports a zero aggregation weight sum. The cell
	// itself always contributes a positive weight, so this signals an
	// invariant violation rather than a recoverable condition.
	ErrDegenerateWeight = errors.New("field: aggregation weight sum is zero")
)

// BGR is a packed blue-green-red color sample used by the range kernel.
type BGR [3]uint8

// Cell holds the per-pixel state of the orientation field.
type Cell struct {
	Row, Col  int
	Cluster   int // dense cluster id, assigned at construction
	Dx, Dy    float32
	Angle     float64 // undirected tangent orientation in (-pi/2, pi/2]
	Magnitude float64
}

// Field is a dense rows x cols grid of cells. Dimensions are fixed at
// construction; iterations replace the whole grid, never single cells.
type Field struct {
	cells [][]Cell
}

// New builds a field from per-pixel gradient components and a raw
// cluster partition. Magnitude is the Euclidean norm of (dx, dy) and
// the angle is the tangent direction perpendicular to the gradient.
// Raw cluster labels are remapped to dense ids in row-major
// first-encounter order.
func New(dx, dy [][]float32, clusters [][]int) (*Field, error) {
	rows := len(dx)
	if rows == 0 || len(dx[0]) == 0 {
		return nil, ErrEmptyField
	}
	cols := len(dx[0])

	if len(dy) != rows || len(clusters) != rows {
		return nil, ErrDimensionMismatch
	}
	for r := 0; r < rows; r++ {
		if len(dx[r]) != cols || len(dy[r]) != cols || len(clusters[r]) != cols {
			return nil, ErrDimensionMismatch
		}
	}

	dense := make(map[int]int)
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			raw := clusters[r][c]
			id, ok := dense[raw]
			if !ok {
				id = len(dense)
				dense[raw] = id
			}
			gx, gy := dx[r][c], dy[r][c]
			cells[r][c] = Cell{
				Row:       r,
				Col:       c,
				Cluster:   id,
				Dx:        gx,
				Dy:        gy,
				Angle:     tangentAngle(gx, gy),
				Magnitude: math.Hypot(float64(gx), float64(gy)),
			}
		}
	}
	return &Field{cells: cells}, nil
}

// tangentAngle returns the orientation perpendicular to the gradient
// (dx, dy), one arctangent branch of dx/-dy so the natural range is
// (-pi/2, pi/2]. A zero vertical component yields a zero quotient,
// matching OpenCV's divide-by-zero convention, so the angle is 0.
func tangentAngle(dx, dy float32) float64 {
	if dy == 0 {
		return 0
	}
	return math.Atan(float64(dx) / float64(-dy))
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return len(f.cells) }

// Cols returns the number of columns.
func (f *Field) Cols() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

// At returns the cell at (r, c).
func (f *Field) At(r, c int) Cell { return f.cells[r][c] }

// Angles returns a row-major copy of all cell angles.
func (f *Field) Angles() [][]float64 {
	out := make([][]float64, f.Rows())
	for r := range f.cells {
		out[r] = make([]float64, f.Cols())
		for c := range f.cells[r] {
			out[r][c] = f.cells[r][c].Angle
		}
	}
	return out
}

// Magnitudes returns a row-major copy of all cell magnitudes.
func (f *Field) Magnitudes() [][]float64 {
	out := make([][]float64, f.Rows())
	for r := range f.cells {
		out[r] = make([]float64, f.Cols())
		for c := range f.cells[r] {
			out[r][c] = f.cells[r][c].Magnitude
		}
	}
	return out
}

// clone returns a deep copy of the field, used as the starting point of
// the next generation.
func (f *Field) clone() *Field {
	cells := make([][]Cell, len(f.cells))
	for r := range f.cells {
		cells[r] = make([]Cell, len(f.cells[r]))
		copy(cells[r], f.cells[r])
	}
	return &Field{cells: cells}
}
