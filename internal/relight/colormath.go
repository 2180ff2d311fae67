package relight

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DecodeGamma is the fixed exponent applied when linearizing stored color bytes.
const DecodeGamma = 2.2

// DecodeChannel converts a stored 8-bit channel value to linear light.
//
// Color channels are raised to DecodeGamma; the alpha channel is only
// normalized to [0, 1].
func DecodeChannel(b uint8, isAlpha bool) float32 {
	v := float64(b) / 255.0
	if isAlpha {
		return float32(v)
	}
	return float32(math.Pow(v, DecodeGamma))
}

// EncodeChannel converts a linear value to an 8-bit display value:
//
//	floor(clamp((linear*level)^gamma, 0, 1) * 255)
//
// The result is truncated, not rounded. NaN inputs (a negative base with a
// fractional gamma) encode to 0.
func EncodeChannel(linear float32, gamma, level float64) uint8 {
	v := math.Pow(float64(linear)*level, gamma)
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// WrapHue maps any hue onto [0, 1), treating the color wheel as circular.
// A hue of exactly 1.0 is therefore red, the same as 0.
func WrapHue(hue float64) float64 {
	h := hue - math.Floor(hue)
	if h >= 1 {
		// hue a tiny negative number: 1 - ε rounds to 1.
		h = 0
	}
	return h
}

// HSVToRGB converts a tint to a linear RGB multiplier.
//
// Hue is a fraction of the color wheel and is wrapped with WrapHue before
// conversion. Saturation is expected in [0, 1]; value may exceed 1 for
// over-bright tints and is not clamped.
func HSVToRGB(hue, saturation, value float64) (r, g, b float64) {
	c := colorful.Hsv(WrapHue(hue)*360.0, saturation, value)
	return c.R, c.G, c.B
}
