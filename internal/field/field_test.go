package field

import (
	"errors"
	"math"
	"testing"
)

func TestNewRemapsClustersInScanOrder(t *testing.T) {
	dx := [][]float32{{1, 1}, {1, 1}}
	dy := [][]float32{{1, 1}, {1, 1}}
	clusters := [][]int{{5, 7}, {7, 9}}

	f, err := New(dx, dy, clusters)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := [][]int{{0, 1}, {1, 2}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if got := f.At(r, c).Cluster; got != want[r][c] {
				t.Errorf("cluster (%d, %d) = %d, want %d", r, c, got, want[r][c])
			}
		}
	}
}

func TestNewConstruction(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  float32
		wantAng float64
		wantMag float64
		tol     float64
	}{
		{name: "diagonal gradient", dx: 1, dy: 1, wantAng: -math.Pi / 4, wantMag: math.Sqrt2, tol: 1e-12},
		{name: "zero vertical component maps to angle 0", dx: 3, dy: 0, wantAng: 0, wantMag: 3, tol: 0},
		{name: "zero gradient", dx: 0, dy: 0, wantAng: 0, wantMag: 0, tol: 0},
		{name: "horizontal only", dx: 0, dy: 2, wantAng: 0, wantMag: 2, tol: 0},
		{name: "negative vertical", dx: 1, dy: -1, wantAng: math.Pi / 4, wantMag: math.Sqrt2, tol: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New([][]float32{{tt.dx}}, [][]float32{{tt.dy}}, [][]int{{0}})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			cell := f.At(0, 0)
			if math.Abs(cell.Angle-tt.wantAng) > tt.tol {
				t.Errorf("angle = %v, want %v", cell.Angle, tt.wantAng)
			}
			if math.Abs(cell.Magnitude-tt.wantMag) > tt.tol {
				t.Errorf("magnitude = %v, want %v", cell.Magnitude, tt.wantMag)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   [][]float32
		clusters [][]int
		want     error
	}{
		{
			name: "no rows",
			dx:   nil, dy: nil, clusters: nil,
			want: ErrEmptyField,
		},
		{
			name: "empty row",
			dx:   [][]float32{{}}, dy: [][]float32{{}}, clusters: [][]int{{}},
			want: ErrEmptyField,
		},
		{
			name: "dy row count differs",
			dx:   [][]float32{{1}, {1}}, dy: [][]float32{{1}}, clusters: [][]int{{0}, {0}},
			want: ErrDimensionMismatch,
		},
		{
			name: "cluster column count differs",
			dx:   [][]float32{{1, 2}}, dy: [][]float32{{1, 2}}, clusters: [][]int{{0}},
			want: ErrDimensionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.dx, tt.dy, tt.clusters); !errors.Is(err, tt.want) {
				t.Errorf("New error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewSmootherDimensionChecks(t *testing.T) {
	f, err := New([][]float32{{1, 1}}, [][]float32{{1, 1}}, [][]int{{0, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := NewSmoother(f, [][]BGR{{{0, 0, 0}}}, DefaultParams()); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short color row: error = %v, want %v", err, ErrDimensionMismatch)
	}
	if _, err := NewSmoother(f, makeColors(1, 2), DefaultParams()); err != nil {
		t.Errorf("matching colors: unexpected error %v", err)
	}
}

// makeColors builds a uniform mid-gray color sample.
func makeColors(rows, cols int) [][]BGR {
	colors := make([][]BGR, rows)
	for r := range colors {
		colors[r] = make([]BGR, cols)
		for c := range colors[r] {
			colors[r][c] = BGR{128, 128, 128}
		}
	}
	return colors
}
