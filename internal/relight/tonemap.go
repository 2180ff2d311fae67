package relight

import "github.com/anthonynsimon/bild/parallel"

// ToneMap converts an accumulation buffer to display bytes by applying
// EncodeChannel to R, G and B of every pixel. Output alpha is always 255 and
// the output has exactly four bytes per input pixel.
func ToneMap(buf *AccumulationBuffer, gamma, level float64) *DisplayImage {
	pixels := len(buf.Pix) / 4
	out := &DisplayImage{
		Width:  buf.Width,
		Height: buf.Height,
		Pix:    make([]byte, pixels*4),
	}

	parallel.Line(pixels, func(start, end int) {
		for idx := start * 4; idx < end*4; idx += 4 {
			out.Pix[idx] = EncodeChannel(buf.Pix[idx], gamma, level)
			out.Pix[idx+1] = EncodeChannel(buf.Pix[idx+1], gamma, level)
			out.Pix[idx+2] = EncodeChannel(buf.Pix[idx+2], gamma, level)
			out.Pix[idx+3] = 255
		}
	})

	return out
}
