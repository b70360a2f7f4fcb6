// Package visualize encodes orientation-field state as false-color rasters.
package visualize

import (
	"errors"
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"orient-smoother/internal/field"
	"orient-smoother/pkg/colorutil"
)

// ErrClusterOverflow reports a cluster id that does not fit the
// single-byte debug channel.
var ErrClusterOverflow = errors.New("visualize: cluster id exceeds single-byte channel")

// AngleImage renders the field's angles as a hue raster: the range
// (-pi/2, pi/2] maps linearly onto hue [0, 360) at full saturation
// and value. The caller owns the returned mat.
func AngleImage(f *field.Field) gocv.Mat {
	return AngleMatrixImage(f.Angles())
}

// AngleMatrixImage renders a row-major angle matrix as a hue raster.
func AngleMatrixImage(angles [][]float64) gocv.Mat {
	rows := len(angles)
	cols := 0
	if rows > 0 {
		cols = len(angles[0])
	}

	img := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			red, green, blue := colorutil.HSVToRGB(hueForAngle(angles[r][c]), 1, 1)
			img.SetUCharAt(r, c*3+0, blue)
			img.SetUCharAt(r, c*3+1, green)
			img.SetUCharAt(r, c*3+2, red)
		}
	}
	return img
}

// hueForAngle maps an angle in (-pi/2, pi/2] to a hue in degrees.
func hueForAngle(angle float64) float64 {
	return (angle + math.Pi/2) / math.Pi * 360
}

// GradientImage packs the per-cell gradient components and cluster id
// into the red, green and blue channels of a debug raster. Components
// are scaled against the largest component in the field and clamped to
// a byte. Cluster ids must fit a byte; larger partitions are refused
// here rather than inside the smoothing core.
func GradientImage(f *field.Field) (gocv.Mat, error) {
	rows, cols := f.Rows(), f.Cols()

	var maxGrad float32
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := f.At(r, c)
			if cell.Cluster >= 255 {
				return gocv.Mat{}, fmt.Errorf("%w: cluster %d at (%d, %d)", ErrClusterOverflow, cell.Cluster, r, c)
			}
			if cell.Dx > maxGrad {
				maxGrad = cell.Dx
			}
			if cell.Dy > maxGrad {
				maxGrad = cell.Dy
			}
		}
	}

	img := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := f.At(r, c)
			img.SetUCharAt(r, c*3+0, uint8(cell.Cluster))
			img.SetUCharAt(r, c*3+1, scaleComponent(cell.Dy, maxGrad))
			img.SetUCharAt(r, c*3+2, scaleComponent(cell.Dx, maxGrad))
		}
	}
	return img, nil
}

// scaleComponent maps a gradient component onto a byte, clamping
// anything outside [0, maxGrad].
func scaleComponent(v, maxGrad float32) uint8 {
	if maxGrad <= 0 || v <= 0 {
		return 0
	}
	scaled := float64(v) / float64(maxGrad) * 255
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}

// SaveImage writes a raster to disk through OpenCV's encoder.
func SaveImage(path string, img gocv.Mat) error {
	if !gocv.IMWrite(path, img) {
		return fmt.Errorf("visualize: cannot write %s", path)
	}
	return nil
}
