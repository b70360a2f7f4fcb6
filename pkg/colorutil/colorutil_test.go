package colorutil

import (
	"math"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{name: "red", h: 0, s: 1, v: 1, r: 255, g: 0, b: 0},
		{name: "green", h: 120, s: 1, v: 1, r: 0, g: 255, b: 0},
		{name: "blue", h: 240, s: 1, v: 1, r: 0, g: 0, b: 255},
		{name: "hue wraps at 360", h: 360, s: 1, v: 1, r: 255, g: 0, b: 0},
		{name: "black", h: 0, s: 1, v: 0, r: 0, g: 0, b: 0},
		{name: "white", h: 0, s: 0, v: 1, r: 255, g: 255, b: 255},
		{name: "half value yellow", h: 60, s: 1, v: 0.5, r: 127, g: 127, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSVToRGB(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSVRGBRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 30 {
		r, g, b := HSVToRGB(h, 1, 1)
		gotH, gotS, gotV := RGBToHSV(r, g, b)
		if math.Abs(gotH-h) > 1.5 {
			t.Errorf("hue %v round-tripped to %v", h, gotH)
		}
		if gotS < 0.99 || gotV < 0.99 {
			t.Errorf("hue %v: saturation %v value %v drifted from 1", h, gotS, gotV)
		}
	}
}
