// Package color converts shape colors between sRGB and the linear space the
// shape shaders blend in.
//
// Shapes are authored in sRGB and stored in records as linear RGBA. Alpha is
// never gamma-encoded and passes through unchanged.
package color

import "math"

// Linear is an RGBA color with linear float32 components.
type Linear struct {
	R, G, B, A float32
}

// SRGBToLinear converts one sRGB component to linear.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts one linear component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// ToLinear converts sRGB components to a linear color. Components that are
// exact multiples of 1/255 take the lookup table path.
func ToLinear(r, g, b, a float32) Linear {
	return Linear{
		R: toLinear(r),
		G: toLinear(g),
		B: toLinear(b),
		A: a,
	}
}

// ToSRGB converts a linear color back to sRGB components.
func (c Linear) ToSRGB() (r, g, b, a float32) {
	return LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A
}

func toLinear(s float32) float32 {
	if s <= 0 {
		return 0
	}
	if s >= 1 {
		return 1
	}
	scaled := s * 255
	if i := uint8(scaled); float32(i) == scaled {
		return sRGBToLinearLUT[i]
	}
	return SRGBToLinear(s)
}
