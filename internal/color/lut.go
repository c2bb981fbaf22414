package color

import "math"

// sRGBToLinearLUT maps every 8-bit sRGB value to linear float32. Colors
// parsed from hex strings or image/color values land exactly on these steps.
var sRGBToLinearLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		s := float64(i) / 255.0
		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		sRGBToLinearLUT[i] = float32(linear)
	}
}

// SRGB8ToLinear converts an 8-bit sRGB component to linear using the table.
func SRGB8ToLinear(s uint8) float32 {
	return sRGBToLinearLUT[s]
}
