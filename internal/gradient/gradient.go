// Package gradient wraps the OpenCV gradient operator that seeds the
// orientation field, plus the image conversions it needs.
package gradient

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"orient-smoother/internal/field"
)

// Result holds per-pixel Scharr derivatives of an intensity raster.
type Result struct {
	Dx [][]float32
	Dy [][]float32
}

// FromImage computes Scharr x/y derivatives of the image's luminance.
func FromImage(img image.Image) (*Result, error) {
	gray, err := grayMat(img)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	gradX := gocv.NewMat()
	defer gradX.Close()
	gradY := gocv.NewMat()
	defer gradY.Close()

	gocv.Scharr(gray, &gradX, gocv.MatTypeCV32F, 1, 0, 1, 0, gocv.BorderDefault)
	gocv.Scharr(gray, &gradY, gocv.MatTypeCV32F, 0, 1, 1, 0, gocv.BorderDefault)

	rows, cols := gray.Rows(), gray.Cols()
	res := &Result{
		Dx: make([][]float32, rows),
		Dy: make([][]float32, rows),
	}
	for r := 0; r < rows; r++ {
		res.Dx[r] = make([]float32, cols)
		res.Dy[r] = make([]float32, cols)
		for c := 0; c < cols; c++ {
			res.Dx[r][c] = gradX.GetFloatAt(r, c)
			res.Dy[r][c] = gradY.GetFloatAt(r, c)
		}
	}
	return res, nil
}

// Colors extracts the per-pixel BGR sample consumed by the range kernel.
func Colors(img image.Image) [][]field.BGR {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	colors := make([][]field.BGR, h)
	for y := 0; y < h; y++ {
		colors[y] = make([]field.BGR, w)
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			colors[y][x] = field.BGR{uint8(b >> 8), uint8(g >> 8), uint8(r >> 8)}
		}
	}
	return colors
}

// grayMat converts a Go image to a single-channel 8-bit gocv.Mat using
// the standard luminance weights.
func grayMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return gocv.Mat{}, fmt.Errorf("gradient: empty image %dx%d", w, h)
	}

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
			mat.SetUCharAt(y, x, uint8(lum))
		}
	}
	return mat, nil
}
