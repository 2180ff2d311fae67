package relight

import "fmt"

// Image is an immutable linear-light raster with four float channels per
// pixel (R, G, B, A) in row-major order. Alpha is 1.0 for every pixel of a
// decoded opaque layer.
type Image struct {
	width  int
	height int
	pix    []float32
}

// DecodeImage linearizes a raw 8-bit RGBA buffer of width×height pixels.
//
// Color channels go through DecodeChannel with gamma; the fourth channel of
// each pixel is treated as alpha and only normalized.
func DecodeImage(raw []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, &Error{Kind: KindImageDecode, Err: fmt.Errorf("invalid image size %dx%d", width, height)}
	}
	if len(raw) != width*height*4 {
		return nil, &Error{
			Kind: KindImageDecode,
			Err:  fmt.Errorf("raw buffer has %d bytes, expected %d for %dx%d RGBA", len(raw), width*height*4, width, height),
		}
	}

	// color channels go through a 256-entry table
	var lut [256]float32
	for i := range lut {
		lut[i] = DecodeChannel(uint8(i), false)
	}

	pix := make([]float32, len(raw))
	for i, b := range raw {
		if i%4 == 3 {
			pix[i] = DecodeChannel(b, true)
		} else {
			pix[i] = lut[b]
		}
	}

	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Pix returns the linear channel data. Callers must not modify it.
func (im *Image) Pix() []float32 { return im.pix }

// AccumulationBuffer is the linear-light sum of all tinted layers for one
// render. It is owned by that render and never shared.
type AccumulationBuffer struct {
	Width  int
	Height int
	Pix    []float32
}

func newAccumulationBuffer(width, height int) *AccumulationBuffer {
	return &AccumulationBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*4),
	}
}

// DisplayImage is the tone-mapped 8-bit RGBA result. Alpha is always 255.
type DisplayImage struct {
	Width  int
	Height int
	Pix    []byte
}
