package relight

import "strconv"

// Tint is the HSV adjustment applied to one layer. Hue is a fraction of the
// color wheel, Saturation is in [0, 1] and Value may exceed 1.
type Tint struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// Neutral is the identity tint: white at full value.
var Neutral = Tint{Hue: 0, Saturation: 0, Value: 1}

// Multiplier returns the linear RGB multiplier for t.
func (t Tint) Multiplier() (r, g, b float64) {
	return HSVToRGB(t.Hue, t.Saturation, t.Value)
}

// TintsFromFlat groups a flat hue, saturation, value sequence into Tints.
//
// # Errors
//
//   - KindParameterMismatch if len(params) != 3*layers. Got and Want hold
//     the flat counts.
func TintsFromFlat(params []float64, layers int) ([]Tint, error) {
	if len(params) != 3*layers {
		return nil, &Error{Kind: KindParameterMismatch, Got: len(params), Want: 3 * layers}
	}
	tints := make([]Tint, layers)
	for i := range tints {
		tints[i] = Tint{
			Hue:        params[i*3],
			Saturation: params[i*3+1],
			Value:      params[i*3+2],
		}
	}
	return tints, nil
}

// Descriptor describes one UI-bindable render parameter.
type Descriptor struct {
	Name    string  `json:"name"`
	Parent  string  `json:"parent"`
	Default float64 `json:"default"`
}

// Descriptors returns three parameter descriptors per layer, in flat
// parameter order: "<i>-hue", "<i>-saturation", "<i>-value".
func Descriptors(layers int) []Descriptor {
	out := make([]Descriptor, 0, layers*3)
	for i := 0; i < layers; i++ {
		parent := strconv.Itoa(i)
		out = append(out,
			Descriptor{Name: parent + "-hue", Parent: parent, Default: Neutral.Hue},
			Descriptor{Name: parent + "-saturation", Parent: parent, Default: Neutral.Saturation},
			Descriptor{Name: parent + "-value", Parent: parent, Default: Neutral.Value},
		)
	}
	return out
}
