// Package colorutil provides shared color conversions for the flow smoother.
package colorutil

import (
	"math"
)

// HSVToRGB converts HSV to RGB bytes. H is in degrees, S and V in [0, 1].
// Hue wraps, so 360 maps to 0.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	hi := int(h / 60)
	f := h/60 - float64(hi)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch hi {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

// RGBToHSV converts RGB bytes to HSV with H in degrees [0, 360) and
// S, V in [0, 1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	if diff == 0 {
		h = 0
	} else if maxC == rf {
		h = 60 * math.Mod((gf-bf)/diff, 6)
	} else if maxC == gf {
		h = 60 * ((bf-rf)/diff + 2)
	} else {
		h = 60 * ((rf-gf)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	return h, s, v
}
