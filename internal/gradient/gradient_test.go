package gradient

import (
	"image"
	"image/color"
	"testing"

	"orient-smoother/internal/field"
)

func TestColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	colors := Colors(img)
	if len(colors) != 1 || len(colors[0]) != 2 {
		t.Fatalf("dimensions = %dx%d, want 1x2", len(colors), len(colors[0]))
	}

	// Samples are stored blue-green-red, matching OpenCV channel order.
	if want := (field.BGR{30, 20, 10}); colors[0][0] != want {
		t.Errorf("pixel (0, 0) = %v, want %v", colors[0][0], want)
	}
	if want := (field.BGR{50, 100, 200}); colors[0][1] != want {
		t.Errorf("pixel (0, 1) = %v, want %v", colors[0][1], want)
	}
}

func TestColorsRespectsImageOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.Set(5, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	colors := Colors(img)
	if want := (field.BGR{3, 2, 1}); colors[0][0] != want {
		t.Errorf("offset pixel = %v, want %v", colors[0][0], want)
	}
}
