package relight

import "github.com/anthonynsimon/bild/parallel"

// Composite sums the layers of snap, each scaled by the RGB multiplier of
// its positional tint, into a fresh AccumulationBuffer.
//
// Alpha in the buffer is overwritten with 1.0 by every layer rather than
// accumulated. The snapshot is only read.
//
// # Errors
//
//   - KindEmptyInput if snap has no layers.
//   - KindParameterMismatch if len(tints) != len(snap.Layers).
func Composite(snap Snapshot, tints []Tint) (*AccumulationBuffer, error) {
	if len(snap.Layers) == 0 {
		return nil, &Error{Kind: KindEmptyInput}
	}
	if len(tints) != len(snap.Layers) {
		return nil, &Error{Kind: KindParameterMismatch, Got: len(tints), Want: len(snap.Layers)}
	}

	mods := make([][3]float32, len(tints))
	for i, t := range tints {
		r, g, b := t.Multiplier()
		mods[i] = [3]float32{float32(r), float32(g), float32(b)}
	}

	buf := newAccumulationBuffer(snap.Width, snap.Height)
	stride := snap.Width * 4

	// Rows are independent; each band walks the layers in store order so the
	// per-pixel summation order does not depend on the band split.
	parallel.Line(snap.Height, func(start, end int) {
		lo, hi := start*stride, end*stride
		dst := buf.Pix[lo:hi]
		for i, layer := range snap.Layers {
			src := layer.pix[lo:hi]
			m := mods[i]
			for idx := 0; idx < len(dst); idx += 4 {
				dst[idx] += src[idx] * m[0]
				dst[idx+1] += src[idx+1] * m[1]
				dst[idx+2] += src[idx+2] * m[2]
				dst[idx+3] = 1
			}
		}
	})

	return buf, nil
}
